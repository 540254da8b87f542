package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("insert medical record: %w", err)
	}
	return record, nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id uint) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find medical record: %w", err)
	}
	return &record, nil
}

func (r *RecordRepository) ListByPatient(ctx context.Context, patientID uint) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return records, nil
}
