package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return appointment, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Order("date")
	if filter.PatientID != 0 {
		q = q.Where("patient_id = ?", filter.PatientID)
	}
	if filter.ClinicianID != 0 {
		q = q.Where("clinician_id = ?", filter.ClinicianID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var appointments []domain.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}
