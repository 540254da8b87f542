package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
	"github.com/medcore/healthcare-api/internal/crypto"
)

// MediaService handles encrypted file attachments. File bytes are sealed
// with the cipher and held base64-encoded in the media row.
type MediaService struct {
	media    ports.MediaRepository
	patients ports.PatientRepository
	cipher   *crypto.Cipher
	audit    ports.AuditTrail
	logger   zerolog.Logger
}

func NewMediaService(
	media ports.MediaRepository,
	patients ports.PatientRepository,
	cipher *crypto.Cipher,
	audit ports.AuditTrail,
	logger zerolog.Logger,
) *MediaService {
	return &MediaService{
		media:    media,
		patients: patients,
		cipher:   cipher,
		audit:    audit,
		logger:   logger,
	}
}

// Upload encrypts and stores an attachment for a patient.
func (s *MediaService) Upload(ctx context.Context, actor domain.Identity, patientID uint, filename, fileType string, content []byte) (*domain.MediaFile, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}

	encrypted, err := s.cipher.Encrypt(content)
	if err != nil {
		return nil, err
	}

	media := &domain.MediaFile{
		PatientID:        patientID,
		OriginalFilename: filename,
		FileType:         fileType,
		StoredName:       uuid.NewString(),
		EncryptedContent: base64.StdEncoding.EncodeToString(encrypted),
		FileSize:         int64(len(content)),
		UploadedBy:       actor.UserID,
		UploadedAt:       time.Now().UTC(),
	}

	created, err := s.media.Create(ctx, media)
	if err != nil {
		return nil, err
	}

	s.recordAudit(domain.AuditMediaUploaded, actor, patientID, created.ID)
	s.logger.Info().
		Uint("media_id", created.ID).
		Uint("patient_id", patientID).
		Str("file_type", fileType).
		Int64("size", created.FileSize).
		Msg("media file uploaded")
	return created, nil
}

// ListForPatient returns a patient's attachments newest first. Metadata
// only; content stays sealed until Download.
func (s *MediaService) ListForPatient(ctx context.Context, actor domain.Identity, patientID uint) ([]domain.MediaFile, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	if !domain.CanAccessPatient(actor, patientID) {
		return nil, domain.ErrForbidden
	}
	return s.media.ListByPatient(ctx, patientID)
}

// Download returns an attachment's metadata and decrypted bytes.
func (s *MediaService) Download(ctx context.Context, actor domain.Identity, mediaID uint) (*domain.MediaFile, []byte, error) {
	media, err := s.media.FindByID(ctx, mediaID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.CanAccessPatient(actor, media.PatientID) {
		return nil, nil, domain.ErrForbidden
	}

	sealed, err := base64.StdEncoding.DecodeString(media.EncryptedContent)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.cipher.Decrypt(sealed)
	if err != nil {
		return nil, nil, err
	}

	s.recordAudit(domain.AuditMediaDownloaded, actor, media.PatientID, media.ID)
	return media, content, nil
}

func (s *MediaService) recordAudit(action string, actor domain.Identity, patientID, mediaID uint) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		ActorID:   actor.UserID,
		Action:    action,
		PatientID: patientID,
		Entity:    "media_file",
		EntityID:  mediaID,
		At:        time.Now().UTC(),
	})
}
