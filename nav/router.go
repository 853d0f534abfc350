package nav

import (
	"strings"

	"carexpert/models"
	"carexpert/session"
)

// Route names. These mirror the pages of the CareXpert frontend.
const (
	RouteHome               = "home"
	RouteAbout              = "about"
	RouteAuth               = "auth"
	RoutePatientDashboard   = "patient-dashboard"
	RouteDoctorDashboard    = "doctor-dashboard"
	RouteAppointments       = "appointments"
	RouteDoctorAppointments = "doctor-appointments"
	RouteDoctors            = "doctors"
	RouteDoctorProfile      = "doctor-profile"
	RouteBookAppointment    = "book-appointment"
	RoutePrescriptions      = "prescriptions"
	RouteNotifications      = "notifications"
	RoutePendingRequests    = "pending-requests"
	RouteProfile            = "profile"
	RouteChat               = "chat"
	RouteAdmin              = "admin"
	RouteNotFound           = "not-found"
)

type route struct {
	name    string
	pattern string // path segments; ":x" matches one segment
	guarded bool
}

// Table order matters only for patterns with the same prefix; unknown paths
// fall through to not-found.
var routes = []route{
	{RouteHome, "/", false},
	{RouteAbout, "/about", false},
	{RouteAuth, "/auth/*", false},
	{RoutePatientDashboard, "/dashboard/patient", true},
	{RouteDoctorDashboard, "/dashboard/doctor", true},
	{RouteAppointments, "/appointments", true},
	{RouteDoctorAppointments, "/doctor/appointments", true},
	{RouteDoctors, "/doctors", true},
	{RouteDoctorProfile, "/doctors/:id", true},
	{RouteBookAppointment, "/book-appointment/:id", true},
	{RoutePrescriptions, "/prescriptions", true},
	{RouteNotifications, "/notifications", true},
	{RoutePendingRequests, "/pending-requests", true},
	{RouteProfile, "/profile", true},
	{RouteChat, "/chat", true},
	{RouteAdmin, "/admin", true},
}

// Match is a resolved navigation.
type Match struct {
	Route    string
	Params   map[string]string
	Decision Decision
}

// Router resolves paths against the route table and applies the auth guard
// to guarded routes. It reads the session store on every resolution.
type Router struct {
	Session *session.Store
}

func NewRouter(store *session.Store) *Router {
	return &Router{Session: store}
}

// Resolve maps a location to a route, guarding it against the current user.
func (r *Router) Resolve(loc Location) Match {
	for _, rt := range routes {
		params, ok := matchPattern(rt.pattern, loc.Path)
		if !ok {
			continue
		}
		m := Match{Route: rt.name, Params: params}
		if rt.guarded {
			m.Decision = Guard(r.Session.User(), loc)
		} else {
			m.Decision = Decision{Allowed: true}
		}
		return m
	}
	return Match{Route: RouteNotFound, Decision: Decision{Allowed: true}}
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	if pattern == "/" {
		return nil, path == "/" || path == ""
	}
	pSegs := splitPath(pattern)
	segs := splitPath(path)

	// Trailing wildcard swallows the rest of the path.
	if n := len(pSegs); n > 0 && pSegs[n-1] == "*" {
		if len(segs) < n-1 {
			return nil, false
		}
		pSegs = pSegs[:n-1]
		segs = segs[:n-1]
	} else if len(segs) != len(pSegs) {
		return nil, false
	}

	var params map[string]string
	for i, p := range pSegs {
		if strings.HasPrefix(p, ":") {
			if params == nil {
				params = make(map[string]string)
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// HomeFor returns the landing route for a signed-in user's role, used after
// login to send each role to its own dashboard.
func HomeFor(user *models.AuthUser) string {
	switch {
	case user == nil:
		return LoginPath
	case user.Role == models.RoleDoctor:
		return "/dashboard/doctor"
	case user.Role == models.RoleAdmin:
		return "/admin"
	default:
		return "/dashboard/patient"
	}
}
