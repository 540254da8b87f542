package domain

import (
	"errors"
	"time"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

// Prescription records a medication issued to a patient by a clinician.
type Prescription struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PatientID      uint      `json:"patient_id" gorm:"index"`
	ClinicianID    uint      `json:"clinician_id" gorm:"index"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Notes          string    `json:"notes"`
	IssuedDate     time.Time `json:"issued_date"`
}
