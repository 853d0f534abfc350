package models

// Doctor is a doctor profile as returned by the patient directory endpoint.
// All fields are display data owned by the backend.
type Doctor struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Specialty       string      `json:"specialty"`
	ClinicLocation  string      `json:"clinicLocation"`
	Experience      string      `json:"experience"`
	Education       string      `json:"education"`
	Bio             string      `json:"bio"`
	Languages       []string    `json:"languages"`
	ConsultationFee float64     `json:"consultationFee"`
	User            UserSummary `json:"user"`
	// Fetched but not used for slot generation; slots come from the static
	// catalog in the booking package.
	NextAvailable string `json:"nextAvailable"`
}
