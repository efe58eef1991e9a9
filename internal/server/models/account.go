package models

import "time"

// Role is the fixed set of account roles. A typed string keeps invalid roles
// out of the domain while staying trivial to scan from the database.
type Role string

const (
	RolePatient     Role = "patient"
	RoleDoctor      Role = "doctor"
	RoleClinicAdmin Role = "clinic_admin"
	RoleSystemAdmin Role = "system_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleClinicAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// Account is an identity record. Email is stored case-normalized and is
// unique across the system. Accounts are deactivated, never hard-deleted.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
