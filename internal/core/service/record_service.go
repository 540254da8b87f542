package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
	"github.com/medcore/healthcare-api/internal/crypto"
)

// RecordService handles medical records. Content is encrypted before it
// reaches the repository and decrypted before it leaves the service, so the
// plaintext never touches storage.
type RecordService struct {
	records  ports.RecordRepository
	patients ports.PatientRepository
	cipher   *crypto.Cipher
	audit    ports.AuditTrail // nil disables the trail
	logger   zerolog.Logger
}

func NewRecordService(
	records ports.RecordRepository,
	patients ports.PatientRepository,
	cipher *crypto.Cipher,
	audit ports.AuditTrail,
	logger zerolog.Logger,
) *RecordService {
	return &RecordService{
		records:  records,
		patients: patients,
		cipher:   cipher,
		audit:    audit,
		logger:   logger,
	}
}

// Add stores an encrypted record and returns it with plaintext content.
// Route middleware restricts callers to clinician and admin roles.
func (s *RecordService) Add(ctx context.Context, actor domain.Identity, patientID uint, recordType, content string) (*domain.MedicalRecord, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}

	encrypted, err := s.cipher.EncryptString(content)
	if err != nil {
		return nil, err
	}

	record := &domain.MedicalRecord{
		PatientID:   patientID,
		ClinicianID: actor.UserID,
		RecordType:  recordType,
		Content:     encrypted,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditRecordCreated, actor, patientID, created.ID)
	s.logger.Info().
		Uint("record_id", created.ID).
		Uint("patient_id", patientID).
		Str("record_type", recordType).
		Msg("medical record created")

	out := *created
	out.Content = content
	return &out, nil
}

// ListForPatient returns a patient's records newest first, decrypted.
func (s *RecordService) ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.MedicalRecord, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}

	records, err := s.records.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	for i := range records {
		plaintext, err := s.cipher.DecryptString(records[i].Content)
		if err != nil {
			return nil, err
		}
		records[i].Content = plaintext
	}

	s.recordAudit(domain.AuditRecordViewed, actor, patientID, 0)
	return records, nil
}

func (s *RecordService) Get(ctx context.Context, actor domain.Identity, recordID uint) (*domain.MedicalRecord, error) {
	record, err := s.records.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, record.PatientID) {
		return nil, domain.ErrForbidden
	}

	plaintext, err := s.cipher.DecryptString(record.Content)
	if err != nil {
		return nil, err
	}
	record.Content = plaintext

	s.recordAudit(domain.AuditRecordViewed, actor, record.PatientID, record.ID)
	return record, nil
}

func (s *RecordService) recordAudit(action string, actor domain.Identity, patientID, recordID uint) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		ActorID:   actor.UserID,
		Action:    action,
		PatientID: patientID,
		Entity:    "medical_record",
		EntityID:  recordID,
		At:        time.Now().UTC(),
	})
}
