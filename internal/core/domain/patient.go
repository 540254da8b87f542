package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")

// Patient is the profile holding a patient's demographic data. Every
// patient-scoped resource (appointment, record, prescription, media file)
// belongs to exactly one Patient.
type Patient struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
}

// CanAccessPatient decides whether the actor may act on the given patient's
// data. Roles with blanket access always may; a patient only when the target
// is their own linked profile. Pure — evaluated on every request, never
// cached.
func CanAccessPatient(actor Identity, patientID uint) bool {
	if actor.Role.HasBlanketPatientAccess() {
		return true
	}
	if actor.Role == RolePatient {
		return actor.PatientID != nil && *actor.PatientID == patientID
	}
	return false
}
