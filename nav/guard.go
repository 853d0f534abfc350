package nav

import "carexpert/models"

// LoginPath is where unauthenticated navigation gets redirected.
const LoginPath = "/auth/login"

// Location is a client-side navigation target.
type Location struct {
	Path  string
	Query string
}

// Decision is the outcome of guarding a navigation: either render the
// requested route, or redirect to login remembering where the user was
// headed so the login flow can return them afterward.
type Decision struct {
	Allowed bool
	// Redirect target and the location the user attempted, set only when
	// Allowed is false.
	RedirectTo string
	From       Location
}

// Guard decides whether a guarded route may render for the given user. It is
// pure and synchronous, evaluated on every navigation, with no side effects
// beyond the returned decision.
func Guard(user *models.AuthUser, loc Location) Decision {
	if user == nil {
		return Decision{RedirectTo: LoginPath, From: loc}
	}
	return Decision{Allowed: true}
}
