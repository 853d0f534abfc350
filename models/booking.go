package models

// Appointment modality.
const (
	AppointmentOnline  = "ONLINE"  // video call
	AppointmentOffline = "OFFLINE" // in person
)

// BookingDraft is the transient booking form state scoped to one open
// dialog. It is seeded when the dialog opens and discarded on close or
// successful submit; no draft survives a page reload.
type BookingDraft struct {
	DoctorID        string `json:"doctorId"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	AppointmentType string `json:"appointmentType"`
	Notes           string `json:"notes,omitempty"`
}

// EmptyDraft returns the blank draft shape used on open and reset.
func EmptyDraft() BookingDraft {
	return BookingDraft{AppointmentType: AppointmentOffline}
}
