package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

// PatientService exposes patient profile reads and updates.
type PatientService struct {
	patients ports.PatientRepository
	logger   zerolog.Logger
}

func NewPatientService(patients ports.PatientRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{patients: patients, logger: logger}
}

// List returns all patient profiles. Callers are gated to roles with blanket
// access by the route; the check here is a second line of defence.
func (s *PatientService) List(ctx context.Context, actor domain.Identity) ([]domain.Patient, error) {
	if !actor.Role.HasBlanketPatientAccess() {
		return nil, domain.ErrForbidden
	}
	return s.patients.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, actor domain.Identity, patientID uint) (*domain.Patient, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}
	return patient, nil
}

// Update applies a partial profile update; nil fields are untouched.
func (s *PatientService) Update(ctx context.Context, actor domain.Identity, patientID uint, input ports.PatientUpdateInput) (*domain.Patient, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}

	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.Phone != nil {
		patient.Phone = *input.Phone
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.MedicalHistory != nil {
		patient.MedicalHistory = *input.MedicalHistory
	}

	updated, err := s.patients.Update(ctx, patient)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("patient_id", patientID).Uint("actor_id", actor.UserID).Msg("patient profile updated")
	return updated, nil
}
