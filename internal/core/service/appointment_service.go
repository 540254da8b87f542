package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

// AppointmentService implements scheduling and appointment queries.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	patients     ports.PatientRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		users:        users,
		logger:       logger,
	}
}

// Schedule creates an appointment for a patient. Existence is checked before
// access, so an absent patient is a 404 even for actors without access.
func (s *AppointmentService) Schedule(ctx context.Context, actor domain.Identity, patientID uint, input ports.ScheduleAppointmentInput) (*domain.Appointment, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}

	clinician, err := s.users.FindByID(ctx, input.ClinicianID)
	if err != nil {
		return nil, domain.ErrClinicianNotFound
	}

	now := time.Now().UTC()
	appointment := &domain.Appointment{
		PatientID:   patientID,
		ClinicianID: clinician.ID,
		Date:        input.Date,
		Reason:      input.Reason,
		Notes:       input.Notes,
		Status:      domain.StatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("appointment_id", created.ID).
		Uint("patient_id", patientID).
		Uint("clinician_id", clinician.ID).
		Msg("appointment scheduled")
	return created, nil
}

// ListForActor returns the appointments visible to the actor: their own for
// patients, assigned ones for clinicians, everything for admins.
func (s *AppointmentService) ListForActor(ctx context.Context, actor domain.Identity, statusFilter string) ([]domain.Appointment, error) {
	filter := ports.AppointmentFilter{}

	switch actor.Role {
	case domain.RolePatient:
		if actor.PatientID == nil {
			return nil, domain.ErrPatientNotFound
		}
		filter.PatientID = *actor.PatientID
	case domain.RoleClinician:
		filter.ClinicianID = actor.UserID
	case domain.RoleAdmin:
		// unrestricted
	default:
		return nil, domain.ErrForbidden
	}

	if statusFilter != "" {
		status, err := domain.ParseAppointmentStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	return s.appointments.List(ctx, filter)
}

func (s *AppointmentService) ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.Appointment, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}
	return s.appointments.List(ctx, ports.AppointmentFilter{PatientID: patientID})
}

// UpdateStatus moves an appointment to a new status. Clinicians may only
// touch their own appointments; admins any.
func (s *AppointmentService) UpdateStatus(ctx context.Context, actor domain.Identity, appointmentID uint, status domain.AppointmentStatus, notes string) (*domain.Appointment, error) {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleAdmin && appointment.ClinicianID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	appointment.Status = status
	if notes != "" {
		appointment.Notes = notes
	}
	appointment.UpdatedAt = time.Now().UTC()

	updated, err := s.appointments.Update(ctx, appointment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("appointment_id", appointmentID).
		Str("status", string(status)).
		Uint("actor_id", actor.UserID).
		Msg("appointment updated")
	return updated, nil
}
