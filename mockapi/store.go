package mockapi

import (
	"sync"
	"time"

	"carexpert/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// account pairs a user with their bcrypt password hash.
type account struct {
	user         models.AuthUser
	passwordHash []byte
}

// Store is the in-memory backing state of the mock API. It exists for
// development and tests only; nothing survives a restart.
type Store struct {
	mu            sync.RWMutex
	accounts      map[string]*account // by email
	doctors       []models.Doctor
	appointments  []*models.Appointment
	prescriptions []models.Prescription
	messages      []models.ChatMessage
	notifications map[string][]models.Notification // by user ID
}

// SeedPassword is the password of every seeded account.
const SeedPassword = "carexpert"

// Seeded account emails.
const (
	SeedPatientEmail = "pat@carexpert.dev"
	SeedDoctorEmail  = "alice@carexpert.dev"
	SeedAdminEmail   = "admin@carexpert.dev"
)

// NewStore builds a store seeded with a patient, a doctor, an admin, and a
// doctor directory spanning the fixed specialty and location catalogs.
func NewStore() *Store {
	s := &Store{
		accounts:      make(map[string]*account),
		notifications: make(map[string][]models.Notification),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)

	addAccount := func(name, email, role string) models.AuthUser {
		u := models.AuthUser{ID: uuid.NewString(), Name: name, Email: email, Role: role}
		s.accounts[email] = &account{user: u, passwordHash: hash}
		return u
	}

	patient := addAccount("Pat Taylor", SeedPatientEmail, models.RolePatient)
	alice := addAccount("Dr. Alice Smith", SeedDoctorEmail, models.RoleDoctor)
	addAccount("Sam Reid", SeedAdminEmail, models.RoleAdmin)

	addDoctor := func(user models.AuthUser, specialty, location, experience, education, bio string, languages []string, fee float64) models.Doctor {
		d := models.Doctor{
			ID:              uuid.NewString(),
			UserID:          user.ID,
			Specialty:       specialty,
			ClinicLocation:  location,
			Experience:      experience,
			Education:       education,
			Bio:             bio,
			Languages:       languages,
			ConsultationFee: fee,
			User:            models.UserSummary{Name: user.Name},
			NextAvailable:   time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		}
		s.doctors = append(s.doctors, d)
		return d
	}

	aliceDoc := addDoctor(alice, "Cardiology", "New York, NY",
		"12 years", "MD, Johns Hopkins",
		"Preventive cardiology and hypertension management.",
		[]string{"English", "Spanish"}, 150)
	addDoctor(models.AuthUser{ID: uuid.NewString(), Name: "Dr. Bob Lee"},
		"Dermatology", "Los Angeles, CA",
		"8 years", "MD, UCLA",
		"Medical and cosmetic dermatology.",
		[]string{"English", "Mandarin"}, 120)
	addDoctor(models.AuthUser{ID: uuid.NewString(), Name: "Dr. Priya Nair"},
		"Pediatrics", "Chicago, IL",
		"15 years", "MD, AIIMS",
		"General pediatrics and adolescent care.",
		[]string{"English", "Hindi", "Malayalam"}, 100)
	addDoctor(models.AuthUser{ID: uuid.NewString(), Name: "Dr. Omar Haddad"},
		"Neurology", "Boston, MA",
		"10 years", "MD, Tufts",
		"Headache and movement disorders.",
		[]string{"English", "Arabic"}, 180)

	// One confirmed appointment and one prescription for the seeded patient.
	appt := &models.Appointment{
		ID:              uuid.NewString(),
		DoctorID:        aliceDoc.ID,
		DoctorName:      alice.Name,
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		Date:            time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:            "10:00",
		AppointmentType: models.AppointmentOffline,
		Status:          models.AppointmentConfirmed,
		CreatedAt:       time.Now(),
	}
	s.appointments = append(s.appointments, appt)

	s.prescriptions = append(s.prescriptions, models.Prescription{
		ID:            uuid.NewString(),
		AppointmentID: appt.ID,
		DoctorName:    alice.Name,
		Medications:   []string{"Lisinopril 10mg"},
		Instructions:  "Once daily with water.",
		IssuedAt:      time.Now().AddDate(0, 0, -30),
	})

	s.notifications[patient.ID] = []models.Notification{{
		ID:        uuid.NewString(),
		Title:     "Welcome to CareXpert",
		Body:      "Your account is ready.",
		CreatedAt: time.Now().AddDate(0, 0, -1),
	}}
}

func (s *Store) authenticate(email, password string) (*models.AuthUser, bool) {
	s.mu.RLock()
	acct, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	u := acct.user
	return &u, true
}

func (s *Store) userByID(id string) (*models.AuthUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acct := range s.accounts {
		if acct.user.ID == id {
			u := acct.user
			return &u, true
		}
	}
	return nil, false
}

func (s *Store) allDoctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

func (s *Store) doctorByID(id string) (*models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			d := s.doctors[i]
			return &d, true
		}
	}
	return nil, false
}

// slotTaken reports whether the doctor already has a non-cancelled
// appointment at the given date and time.
func (s *Store) slotTaken(doctorID, date, timeSlot string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeSlot &&
			a.Status != models.AppointmentCancelled {
			return true
		}
	}
	return false
}

func (s *Store) addAppointment(a *models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, a)
}

func (s *Store) appointmentsFor(match func(*models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if match(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (s *Store) updateAppointment(id string, update func(*models.Appointment) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return update(a)
		}
	}
	return false
}

func (s *Store) prescriptionsForPatient(patientID string) []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Prescriptions hang off appointments; resolve ownership through them.
	owned := make(map[string]bool)
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			owned[a.ID] = true
		}
	}
	var out []models.Prescription
	for _, p := range s.prescriptions {
		if owned[p.AppointmentID] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) conversation(a, b string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ChatMessage
	for _, m := range s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) addMessage(m models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func (s *Store) notificationsFor(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications[userID]))
	copy(out, s.notifications[userID])
	return out
}

func (s *Store) markNotificationRead(userID, notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.notifications[userID]
	for i := range items {
		if items[i].ID == notificationID {
			items[i].Read = true
			return true
		}
	}
	return false
}

func (s *Store) allUsers() []models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuthUser, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, acct.user)
	}
	return out
}
