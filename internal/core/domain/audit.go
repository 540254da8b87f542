package domain

import "time"

// Audit actions recorded against patient-scoped resources.
const (
	AuditRecordCreated     = "record_created"
	AuditRecordViewed      = "record_viewed"
	AuditMediaUploaded     = "media_uploaded"
	AuditMediaDownloaded   = "media_downloaded"
	AuditPrescriptionIssue = "prescription_issued"
)

// AuditEvent is one entry in the access trail for a patient's data. Events
// are written asynchronously and are best-effort; they never block or fail
// the request that produced them.
type AuditEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ActorID   uint      `json:"actor_id" gorm:"index"`
	Action    string    `json:"action" gorm:"size:32"`
	PatientID uint      `json:"patient_id" gorm:"index"`
	Entity    string    `json:"entity" gorm:"size:32"`
	EntityID  uint      `json:"entity_id"`
	At        time.Time `json:"at"`
}
