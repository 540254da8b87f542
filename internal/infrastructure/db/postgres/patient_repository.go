package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}
	return patient, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uint) (*domain.Patient, error) {
	var patient domain.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &patient, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := r.db.WithContext(ctx).Order("id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if err := r.db.WithContext(ctx).Save(patient).Error; err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return patient, nil
}
