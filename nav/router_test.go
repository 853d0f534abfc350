package nav

import (
	"testing"

	"carexpert/models"
	"carexpert/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardRedirectsSignedOut(t *testing.T) {
	loc := Location{Path: "/doctors", Query: "specialty=Cardiology"}

	d := Guard(nil, loc)

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.RedirectTo)
	// The attempted destination rides along so login can return the user.
	assert.Equal(t, loc, d.From)
}

func TestGuardAllowsSignedIn(t *testing.T) {
	d := Guard(&models.AuthUser{ID: "u1", Role: models.RolePatient}, Location{Path: "/doctors"})
	assert.True(t, d.Allowed)
}

func TestResolve(t *testing.T) {
	store := session.NewStore()
	router := NewRouter(store)

	cases := []struct {
		name      string
		path      string
		user      *models.AuthUser
		wantRoute string
		allowed   bool
	}{
		{name: "public home", path: "/", wantRoute: RouteHome, allowed: true},
		{name: "public about", path: "/about", wantRoute: RouteAbout, allowed: true},
		{name: "auth subtree", path: "/auth/login", wantRoute: RouteAuth, allowed: true},
		{name: "guarded doctors signed out", path: "/doctors", wantRoute: RouteDoctors, allowed: false},
		{
			name:      "guarded doctors signed in",
			path:      "/doctors",
			user:      &models.AuthUser{ID: "u1", Role: models.RolePatient},
			wantRoute: RouteDoctors,
			allowed:   true,
		},
		{name: "unknown path", path: "/pharmacy/stock/42", wantRoute: RouteNotFound, allowed: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store.Set(c.user)
			m := router.Resolve(Location{Path: c.path})
			assert.Equal(t, c.wantRoute, m.Route)
			assert.Equal(t, c.allowed, m.Decision.Allowed)
		})
	}
}

func TestResolveParams(t *testing.T) {
	store := session.NewStore()
	store.Set(&models.AuthUser{ID: "u1", Role: models.RolePatient})
	router := NewRouter(store)

	m := router.Resolve(Location{Path: "/doctors/d42"})

	assert.Equal(t, RouteDoctorProfile, m.Route)
	require.NotNil(t, m.Params)
	assert.Equal(t, "d42", m.Params["id"])
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, LoginPath, HomeFor(nil))
	assert.Equal(t, "/dashboard/patient", HomeFor(&models.AuthUser{Role: models.RolePatient}))
	assert.Equal(t, "/dashboard/doctor", HomeFor(&models.AuthUser{Role: models.RoleDoctor}))
	assert.Equal(t, "/admin", HomeFor(&models.AuthUser{Role: models.RoleAdmin}))
}
