package models

import "time"

// Facility is a medical facility (clinic, hospital) that hosts doctors.
type Facility struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}
