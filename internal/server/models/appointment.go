package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked visit of a patient with a doctor.
type Appointment struct {
	ID         string
	PatientID  string
	DoctorID   string
	FacilityID string
	StartsAt   time.Time
	EndsAt     time.Time
	Status     AppointmentStatus
	Notes      string
	CreatedAt  time.Time
}
