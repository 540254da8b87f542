package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles an account can hold. Exactly one role per
// account, fixed at registration.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleClinician Role = "clinician"
	RolePatient   Role = "patient"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClinician, RolePatient:
		return true
	}
	return false
}

// HasBlanketPatientAccess reports whether the role may read and write any
// patient's data regardless of ownership.
func (r Role) HasBlanketPatientAccess() bool {
	return r == RoleAdmin || r == RoleClinician
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrClinicianNotFound  = errors.New("clinician not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrLoginThrottled     = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated account in the system.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role" gorm:"size:16;index"`
	CreatedAt      time.Time `json:"created_at"`
}

// Identity is the authenticated view of an account carried through a request:
// the account id, its role, and the linked patient profile id when the role
// is patient.
type Identity struct {
	UserID    uint
	Role      Role
	PatientID *uint
}
