package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[uint]*domain.Appointment
	nextID       uint
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[uint]*domain.Appointment), nextID: 1}
}

func (r *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	created := *appointment
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.appointments[created.ID] = &stored
	return &created, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id uint) (*domain.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(_ context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range r.appointments {
		if filter.PatientID != 0 && a.PatientID != filter.PatientID {
			continue
		}
		if filter.ClinicianID != 0 && a.ClinicianID != filter.ClinicianID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	clone := stored
	return &clone, nil
}

func seedClinician(t *testing.T, users *stubUserRepo) *domain.User {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{
		Username: "clinician",
		Email:    "clinician@example.com",
		Role:     domain.RoleClinician,
	})
	if err != nil {
		t.Fatalf("seed clinician: %v", err)
	}
	return u
}

func TestAppointmentService_Schedule(t *testing.T) {
	appointments := newStubAppointmentRepo()
	patients := newStubPatientRepo()
	users := newStubUserRepo()
	svc := NewAppointmentService(appointments, patients, users, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	clinician := seedClinician(t, users)
	owner := domain.Identity{UserID: 10, Role: domain.RolePatient, PatientID: &patient.ID}

	created, err := svc.Schedule(context.Background(), owner, patient.ID, ports.ScheduleAppointmentInput{
		ClinicianID: clinician.ID,
		Date:        time.Now().Add(24 * time.Hour).UTC(),
		Reason:      "checkup",
	})
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}
	if created.Status != domain.StatusScheduled {
		t.Fatalf("new appointment status %q, want %q", created.Status, domain.StatusScheduled)
	}
	if created.PatientID != patient.ID || created.ClinicianID != clinician.ID {
		t.Fatalf("unexpected appointment: %+v", created)
	}
}

func TestAppointmentService_Schedule_UnknownPatientBeforeAccess(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), newStubPatientRepo(), newStubUserRepo(), zerolog.Nop())
	otherProfile := uint(42)
	actor := domain.Identity{UserID: 11, Role: domain.RolePatient, PatientID: &otherProfile}

	// absent patient is a not-found even when the actor could not access it
	if _, err := svc.Schedule(context.Background(), actor, 99, ports.ScheduleAppointmentInput{ClinicianID: 1}); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestAppointmentService_Schedule_OtherPatientForbidden(t *testing.T) {
	patients := newStubPatientRepo()
	svc := NewAppointmentService(newStubAppointmentRepo(), patients, newStubUserRepo(), zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	otherProfile := uint(42)
	actor := domain.Identity{UserID: 11, Role: domain.RolePatient, PatientID: &otherProfile}

	if _, err := svc.Schedule(context.Background(), actor, patient.ID, ports.ScheduleAppointmentInput{ClinicianID: 1}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAppointmentService_Schedule_UnknownClinician(t *testing.T) {
	patients := newStubPatientRepo()
	svc := NewAppointmentService(newStubAppointmentRepo(), patients, newStubUserRepo(), zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	owner := domain.Identity{UserID: 10, Role: domain.RolePatient, PatientID: &patient.ID}

	if _, err := svc.Schedule(context.Background(), owner, patient.ID, ports.ScheduleAppointmentInput{ClinicianID: 99}); err != domain.ErrClinicianNotFound {
		t.Fatalf("expected ErrClinicianNotFound, got %v", err)
	}
}

func TestAppointmentService_ListForActor_Scoping(t *testing.T) {
	appointments := newStubAppointmentRepo()
	patients := newStubPatientRepo()
	users := newStubUserRepo()
	svc := NewAppointmentService(appointments, patients, users, zerolog.Nop())

	p1 := seedPatient(t, patients, 10)
	p2 := seedPatient(t, patients, 11)
	clinician := seedClinician(t, users)
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	for _, patientID := range []uint{p1.ID, p2.ID} {
		if _, err := svc.Schedule(context.Background(), admin, patientID, ports.ScheduleAppointmentInput{
			ClinicianID: clinician.ID,
			Date:        time.Now().Add(time.Hour).UTC(),
		}); err != nil {
			t.Fatalf("schedule for patient %d: %v", patientID, err)
		}
	}

	owner := domain.Identity{UserID: 10, Role: domain.RolePatient, PatientID: &p1.ID}
	mine, err := svc.ListForActor(context.Background(), owner, "")
	if err != nil {
		t.Fatalf("patient listing failed: %v", err)
	}
	if len(mine) != 1 || mine[0].PatientID != p1.ID {
		t.Fatalf("patient should only see own appointments, got %+v", mine)
	}

	assigned, err := svc.ListForActor(context.Background(), domain.Identity{UserID: clinician.ID, Role: domain.RoleClinician}, "")
	if err != nil {
		t.Fatalf("clinician listing failed: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("clinician should see both assigned appointments, got %d", len(assigned))
	}

	all, err := svc.ListForActor(context.Background(), admin, "")
	if err != nil {
		t.Fatalf("admin listing failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see everything, got %d", len(all))
	}
}

func TestAppointmentService_ListForActor_BadStatusFilter(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), newStubPatientRepo(), newStubUserRepo(), zerolog.Nop())
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	if _, err := svc.ListForActor(context.Background(), admin, "pending"); err != domain.ErrInvalidAppointmentStatus {
		t.Fatalf("expected ErrInvalidAppointmentStatus, got %v", err)
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	appointments := newStubAppointmentRepo()
	patients := newStubPatientRepo()
	users := newStubUserRepo()
	svc := NewAppointmentService(appointments, patients, users, zerolog.Nop())

	patient := seedPatient(t, patients, 10)
	clinician := seedClinician(t, users)
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	created, err := svc.Schedule(context.Background(), admin, patient.ID, ports.ScheduleAppointmentInput{
		ClinicianID: clinician.ID,
		Date:        time.Now().Add(time.Hour).UTC(),
	})
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	// another clinician cannot touch the appointment
	other := domain.Identity{UserID: clinician.ID + 100, Role: domain.RoleClinician}
	if _, err := svc.UpdateStatus(context.Background(), other, created.ID, domain.StatusConfirmed, ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	owner := domain.Identity{UserID: clinician.ID, Role: domain.RoleClinician}
	updated, err := svc.UpdateStatus(context.Background(), owner, created.ID, domain.StatusCompleted, "all clear")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.Notes != "all clear" {
		t.Fatalf("unexpected update: %+v", updated)
	}
}

func TestAppointmentService_UpdateStatus_UnknownAppointment(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), newStubPatientRepo(), newStubUserRepo(), zerolog.Nop())
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	if _, err := svc.UpdateStatus(context.Background(), admin, 404, domain.StatusCancelled, ""); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
