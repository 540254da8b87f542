// Package postgres provides the GORM-backed repositories. The same
// repositories run against SQLite in tests; only Connect is driver-specific.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// Connect opens a PostgreSQL connection and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Patient{},
		&domain.Appointment{},
		&domain.MedicalRecord{},
		&domain.Prescription{},
		&domain.MediaFile{},
		&domain.AuditEvent{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
