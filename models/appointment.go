package models

import "time"

// Appointment status values as reported by the backend.
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment is a booked (or requested) appointment as listed on the
// patient and doctor dashboards.
type Appointment struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	PatientID       string    `json:"patientId"`
	PatientName     string    `json:"patientName"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Time            string    `json:"time"` // HH:MM
	AppointmentType string    `json:"appointmentType"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
