package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of a scheduled appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus converts a string into a known status.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), nil
	}
	return "", ErrInvalidAppointmentStatus
}

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// Appointment links a patient with a clinician at a point in time.
type Appointment struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	PatientID   uint              `json:"patient_id" gorm:"index"`
	ClinicianID uint              `json:"clinician_id" gorm:"index"`
	Date        time.Time         `json:"appointment_date" gorm:"index"`
	Reason      string            `json:"reason"`
	Notes       string            `json:"notes"`
	Status      AppointmentStatus `json:"status" gorm:"size:16;index"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
