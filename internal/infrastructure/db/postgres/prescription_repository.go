package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *domain.Prescription) (*domain.Prescription, error) {
	if err := r.db.WithContext(ctx).Create(prescription).Error; err != nil {
		return nil, fmt.Errorf("insert prescription: %w", err)
	}
	return prescription, nil
}

func (r *PrescriptionRepository) FindByID(ctx context.Context, id uint) (*domain.Prescription, error) {
	var prescription domain.Prescription
	if err := r.db.WithContext(ctx).First(&prescription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("find prescription: %w", err)
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID uint) ([]domain.Prescription, error) {
	var prescriptions []domain.Prescription
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("issued_date DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescriptions, nil
}
