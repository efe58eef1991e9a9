package models

import "time"

// Doctor is the practitioner profile linked 1:1 to an account with RoleDoctor.
type Doctor struct {
	ID         string
	AccountID  string
	FacilityID string
	Specialty  string
	Bio        string
	CreatedAt  time.Time
}
