package domain

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("medical record not found")

// MedicalRecord is a clinical note attached to a patient. Content is
// encrypted at rest; the stored value is never returned to callers without
// decryption by the record service.
type MedicalRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientID   uint      `json:"patient_id" gorm:"index"`
	ClinicianID uint      `json:"clinician_id" gorm:"index"`
	RecordType  string    `json:"record_type" gorm:"size:64"`
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
