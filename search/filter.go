package search

import (
	"fmt"
	"strings"

	"carexpert/models"
)

// All is the sentinel for an unset categorical filter.
const All = "all"

// Fixed filter catalogs. These are presentation catalogs, not validated
// against the fetched list.
var (
	Specialties = []string{
		"Cardiology",
		"Dermatology",
		"General Medicine",
		"Neurology",
		"Pediatrics",
		"Psychiatry",
		"Orthopedics",
		"Gynecology",
	}

	Locations = []string{
		"New York, NY",
		"Los Angeles, CA",
		"Chicago, IL",
		"Boston, MA",
		"Miami, FL",
		"Seattle, WA",
	}
)

// Filters is the local filter state for the doctor directory: the debounced
// query plus the two categorical selections. Filtering is entirely local to
// the fetched list; it is never sent to the backend.
type Filters struct {
	Query     string
	Specialty string
	Location  string
}

// NewFilters returns the initial state: empty query, both categories "all".
func NewFilters() Filters {
	return Filters{Specialty: All, Location: All}
}

// Matches reports whether a single doctor passes the filters: name or
// specialty contains the query case-insensitively, and each categorical
// selection is either "all" or an exact match.
func (f Filters) Matches(d models.Doctor) bool {
	q := strings.ToLower(f.Query)
	matchesQuery := strings.Contains(strings.ToLower(d.User.Name), q) ||
		strings.Contains(strings.ToLower(d.Specialty), q)
	matchesSpecialty := f.Specialty == All || d.Specialty == f.Specialty
	matchesLocation := f.Location == All || d.ClinicLocation == f.Location
	return matchesQuery && matchesSpecialty && matchesLocation
}

// Apply returns the doctors passing the filters, preserving input order. A
// linear scan: directory lists are small enough that no index is warranted.
func (f Filters) Apply(doctors []models.Doctor) []models.Doctor {
	out := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// CountLabel renders the result-count line shown above the directory.
func CountLabel(n int) string {
	return fmt.Sprintf("Showing %d doctors", n)
}
