package ports

import (
	"context"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// UserRepository persists accounts and resolves request identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindIdentity loads the authenticated view of an account, including the
	// linked patient profile id when the role is patient.
	FindIdentity(ctx context.Context, userID uint) (*domain.Identity, error)
}

// PatientRepository persists patient profiles.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id uint) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
}

// AppointmentFilter narrows appointment listings. Zero values mean
// "no constraint".
type AppointmentFilter struct {
	PatientID   uint
	ClinicianID uint
	Status      domain.AppointmentStatus
}

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id uint) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// RecordRepository persists medical records (content already encrypted by
// the service layer).
type RecordRepository interface {
	Create(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error)
	FindByID(ctx context.Context, id uint) (*domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uint) ([]domain.MedicalRecord, error)
}

// PrescriptionRepository persists prescriptions.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *domain.Prescription) (*domain.Prescription, error)
	FindByID(ctx context.Context, id uint) (*domain.Prescription, error)
	ListByPatient(ctx context.Context, patientID uint) ([]domain.Prescription, error)
}

// MediaRepository persists encrypted media files.
type MediaRepository interface {
	Create(ctx context.Context, media *domain.MediaFile) (*domain.MediaFile, error)
	FindByID(ctx context.Context, id uint) (*domain.MediaFile, error)
	ListByPatient(ctx context.Context, patientID uint) ([]domain.MediaFile, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}
