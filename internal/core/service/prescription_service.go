package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

// PrescriptionService implements prescription issuance and queries.
type PrescriptionService struct {
	prescriptions ports.PrescriptionRepository
	patients      ports.PatientRepository
	audit         ports.AuditTrail
	logger        zerolog.Logger
}

func NewPrescriptionService(
	prescriptions ports.PrescriptionRepository,
	patients ports.PatientRepository,
	audit ports.AuditTrail,
	logger zerolog.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		patients:      patients,
		audit:         audit,
		logger:        logger,
	}
}

// Issue creates a prescription. Route middleware restricts callers to
// clinician and admin roles, which hold blanket patient access.
func (s *PrescriptionService) Issue(ctx context.Context, actor domain.Identity, patientID uint, input ports.PrescriptionInput) (*domain.Prescription, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}

	prescription := &domain.Prescription{
		PatientID:      patientID,
		ClinicianID:    actor.UserID,
		MedicationName: input.MedicationName,
		Dosage:         input.Dosage,
		Frequency:      input.Frequency,
		Duration:       input.Duration,
		Notes:          input.Notes,
		IssuedDate:     time.Now().UTC(),
	}

	created, err := s.prescriptions.Create(ctx, prescription)
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Enqueue(domain.AuditEvent{
			ActorID:   actor.UserID,
			Action:    domain.AuditPrescriptionIssue,
			PatientID: patientID,
			Entity:    "prescription",
			EntityID:  created.ID,
			At:        time.Now().UTC(),
		})
	}

	s.logger.Info().
		Uint("prescription_id", created.ID).
		Uint("patient_id", patientID).
		Str("medication", input.MedicationName).
		Msg("prescription issued")
	return created, nil
}

// ListForPatient returns a patient's prescriptions newest first.
func (s *PrescriptionService) ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.Prescription, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}
	return s.prescriptions.ListByPatient(ctx, patientID)
}

func (s *PrescriptionService) Get(ctx context.Context, actor domain.Identity, prescriptionID uint) (*domain.Prescription, error) {
	prescription, err := s.prescriptions.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, prescription.PatientID) {
		return nil, domain.ErrForbidden
	}
	return prescription, nil
}
