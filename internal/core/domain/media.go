package domain

import (
	"errors"
	"time"
)

var ErrMediaNotFound = errors.New("media file not found")

// MediaFile is an uploaded attachment (lab report, imaging, …) belonging to
// a patient. EncryptedContent holds the base64 form of the encrypted bytes;
// the plaintext never touches storage.
type MediaFile struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	PatientID        uint      `json:"patient_id" gorm:"index"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type" gorm:"size:64"`
	StoredName       string    `json:"-" gorm:"uniqueIndex;size:64"`
	EncryptedContent string    `json:"-" gorm:"type:text"`
	FileSize         int64     `json:"file_size"`
	UploadedBy       uint      `json:"uploaded_by"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
