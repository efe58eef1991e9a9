package models

import "time"

// Schedule is a doctor's recurring weekly availability window. Times are
// minutes from midnight in the facility's local time; SlotMinutes is the
// booking granularity.
type Schedule struct {
	ID          string
	DoctorID    string
	Weekday     time.Weekday
	StartMinute int
	EndMinute   int
	SlotMinutes int
}
