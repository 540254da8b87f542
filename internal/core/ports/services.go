package ports

import (
	"context"
	"time"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID uint) (*domain.User, error)
}

// LoginThrottle rate-limits login attempts per username.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted.
	Allow(ctx context.Context, username string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// AuditTrail accepts audit events for asynchronous persistence.
type AuditTrail interface {
	Enqueue(event domain.AuditEvent)
}

// PatientUpdateInput carries a partial profile update; nil fields are left
// unchanged.
type PatientUpdateInput struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *string
	MedicalHistory *string
}

// PatientService exposes patient profile reads and updates.
type PatientService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.Patient, error)
	Get(ctx context.Context, actor domain.Identity, patientID uint) (*domain.Patient, error)
	Update(ctx context.Context, actor domain.Identity, patientID uint, input PatientUpdateInput) (*domain.Patient, error)
}

// ScheduleAppointmentInput carries a scheduling request.
type ScheduleAppointmentInput struct {
	ClinicianID uint
	Date        time.Time
	Reason      string
	Notes       string
}

// AppointmentService implements scheduling and appointment queries.
type AppointmentService interface {
	Schedule(ctx context.Context, actor domain.Identity, patientID uint, input ScheduleAppointmentInput) (*domain.Appointment, error)
	// ListForActor returns the appointments visible to the actor: their own
	// for patients, assigned ones for clinicians, all for admins.
	ListForActor(ctx context.Context, actor domain.Identity, statusFilter string) ([]domain.Appointment, error)
	ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, actor domain.Identity, appointmentID uint, status domain.AppointmentStatus, notes string) (*domain.Appointment, error)
}

// RecordService implements encrypted medical record handling. Returned
// records always carry decrypted content.
type RecordService interface {
	Add(ctx context.Context, actor domain.Identity, patientID uint, recordType, content string) (*domain.MedicalRecord, error)
	ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.MedicalRecord, error)
	Get(ctx context.Context, actor domain.Identity, recordID uint) (*domain.MedicalRecord, error)
}

// PrescriptionInput carries a prescription issue request.
type PrescriptionInput struct {
	MedicationName string
	Dosage         string
	Frequency      string
	Duration       string
	Notes          string
}

// PrescriptionService implements prescription issuance and queries.
type PrescriptionService interface {
	Issue(ctx context.Context, actor domain.Identity, patientID uint, input PrescriptionInput) (*domain.Prescription, error)
	ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.Prescription, error)
	Get(ctx context.Context, actor domain.Identity, prescriptionID uint) (*domain.Prescription, error)
}

// MediaService implements encrypted attachment upload and download.
type MediaService interface {
	Upload(ctx context.Context, actor domain.Identity, patientID uint, filename, fileType string, content []byte) (*domain.MediaFile, error)
	ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.MediaFile, error)
	// Download returns the file metadata and its decrypted bytes.
	Download(ctx context.Context, actor domain.Identity, mediaID uint) (*domain.MediaFile, []byte, error)
}
