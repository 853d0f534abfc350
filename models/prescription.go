package models

import "time"

// Prescription issued against a completed appointment.
type Prescription struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	DoctorName    string    `json:"doctorName"`
	Medications   []string  `json:"medications"`
	Instructions  string    `json:"instructions"`
	IssuedAt      time.Time `json:"issuedAt"`
}
