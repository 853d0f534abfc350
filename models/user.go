package models

// Role values used to gate UI actions. The backend is authoritative; the
// client only reads the role off the session.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
	RoleAdmin   = "ADMIN"
)

// AuthUser is the authenticated user as held by the client session.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsPatient reports whether u is a signed-in patient.
func (u *AuthUser) IsPatient() bool {
	return u != nil && u.Role == RolePatient
}

// UserSummary is the slice of user data embedded in a doctor profile.
type UserSummary struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}
