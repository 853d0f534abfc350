package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"carexpert/booking"
	"carexpert/models"
	"carexpert/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookie = "token"

// Handlers serves the mock backend endpoints over the in-memory store.
type Handlers struct {
	Store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{Store: store}
}

// respond writes the backend's shared envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.Envelope{
		StatusCode: status,
		Message:    message,
		Success:    status < 400,
		Data:       mustRaw(data),
	})
}

func respondErr(c *gin.Context, status int, message string) {
	c.JSON(status, models.Envelope{StatusCode: status, Message: message, Success: false})
}

func mustRaw(data any) []byte {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		utils.GetLogger().Error("Failed to encode response data", zap.Error(err))
		return nil
	}
	return raw
}

// Auth

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	user, ok := h.Store.authenticate(req.Email, req.Password)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token, err := utils.GenerateToken(utils.SessionClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, 24*time.Hour)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	c.SetCookie(sessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	respond(c, http.StatusOK, "Login successful", gin.H{"token": token, "user": user})
}

func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	respond(c, http.StatusOK, "Logged out", nil)
}

func (h *Handlers) Me(c *gin.Context) {
	claims := sessionFrom(c)
	user, ok := h.Store.userByID(claims.UserID)
	if !ok {
		respondErr(c, http.StatusNotFound, "User not found")
		return
	}
	respond(c, http.StatusOK, "OK", user)
}

// Patient

func (h *Handlers) FetchAllDoctors(c *gin.Context) {
	respond(c, http.StatusOK, "Doctors fetched", h.Store.allDoctors())
}

func (h *Handlers) BookDirectAppointment(c *gin.Context) {
	claims := sessionFrom(c)

	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid booking request")
		return
	}
	if draft.Date == "" || draft.Time == "" {
		respondErr(c, http.StatusBadRequest, "Date and time are required")
		return
	}
	if draft.AppointmentType != models.AppointmentOnline && draft.AppointmentType != models.AppointmentOffline {
		respondErr(c, http.StatusBadRequest, "Invalid appointment type")
		return
	}
	if draft.Date < booking.MinDate(time.Now()) {
		respondErr(c, http.StatusBadRequest, "Cannot book a date in the past")
		return
	}
	if !validSlot(draft.Time) {
		respondErr(c, http.StatusBadRequest, "Invalid time slot")
		return
	}
	doctor, ok := h.Store.doctorByID(draft.DoctorID)
	if !ok {
		respondErr(c, http.StatusNotFound, "Doctor not found")
		return
	}
	if h.Store.slotTaken(doctor.ID, draft.Date, draft.Time) {
		respondErr(c, http.StatusConflict, "Slot taken")
		return
	}

	appt := &models.Appointment{
		ID:              uuid.NewString(),
		DoctorID:        doctor.ID,
		DoctorName:      doctor.User.Name,
		PatientID:       claims.UserID,
		PatientName:     claims.Name,
		Date:            draft.Date,
		Time:            draft.Time,
		AppointmentType: draft.AppointmentType,
		Status:          models.AppointmentPending,
		Notes:           draft.Notes,
		CreatedAt:       time.Now(),
	}
	h.Store.addAppointment(appt)
	respond(c, http.StatusCreated, "Appointment booked successfully", appt)
}

func validSlot(t string) bool {
	for _, s := range booking.TimeSlots() {
		if s == t {
			return true
		}
	}
	return false
}

func (h *Handlers) PatientAppointments(c *gin.Context) {
	claims := sessionFrom(c)
	appts := h.Store.appointmentsFor(func(a *models.Appointment) bool {
		return a.PatientID == claims.UserID
	})
	respond(c, http.StatusOK, "Appointments fetched", appts)
}

func (h *Handlers) CancelAppointment(c *gin.Context) {
	claims := sessionFrom(c)
	id := c.Param("id")
	ok := h.Store.updateAppointment(id, func(a *models.Appointment) bool {
		if a.PatientID != claims.UserID || a.Status == models.AppointmentCompleted {
			return false
		}
		a.Status = models.AppointmentCancelled
		return true
	})
	if !ok {
		respondErr(c, http.StatusNotFound, "Appointment not found")
		return
	}
	respond(c, http.StatusOK, "Appointment cancelled", nil)
}

func (h *Handlers) PatientPrescriptions(c *gin.Context) {
	claims := sessionFrom(c)
	respond(c, http.StatusOK, "Prescriptions fetched", h.Store.prescriptionsForPatient(claims.UserID))
}

// Doctor

// doctorProfile resolves the signed-in doctor's directory entry.
func (h *Handlers) doctorProfile(c *gin.Context) (*models.Doctor, bool) {
	claims := sessionFrom(c)
	s := h.Store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doctors {
		if s.doctors[i].UserID == claims.UserID {
			d := s.doctors[i]
			return &d, true
		}
	}
	return nil, false
}

func (h *Handlers) PendingRequests(c *gin.Context) {
	doctor, ok := h.doctorProfile(c)
	if !ok {
		respondErr(c, http.StatusNotFound, "Doctor profile not found")
		return
	}
	appts := h.Store.appointmentsFor(func(a *models.Appointment) bool {
		return a.DoctorID == doctor.ID && a.Status == models.AppointmentPending
	})
	respond(c, http.StatusOK, "Pending requests fetched", appts)
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

func (h *Handlers) RespondToRequest(c *gin.Context) {
	doctor, ok := h.doctorProfile(c)
	if !ok {
		respondErr(c, http.StatusNotFound, "Doctor profile not found")
		return
	}
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request")
		return
	}
	id := c.Param("id")
	updated := h.Store.updateAppointment(id, func(a *models.Appointment) bool {
		if a.DoctorID != doctor.ID || a.Status != models.AppointmentPending {
			return false
		}
		if req.Accept {
			a.Status = models.AppointmentConfirmed
		} else {
			a.Status = models.AppointmentCancelled
		}
		return true
	})
	if !updated {
		respondErr(c, http.StatusNotFound, "Request not found")
		return
	}
	respond(c, http.StatusOK, "Request updated", nil)
}

func (h *Handlers) DoctorAppointments(c *gin.Context) {
	doctor, ok := h.doctorProfile(c)
	if !ok {
		respondErr(c, http.StatusNotFound, "Doctor profile not found")
		return
	}
	appts := h.Store.appointmentsFor(func(a *models.Appointment) bool {
		return a.DoctorID == doctor.ID && a.Status != models.AppointmentPending
	})
	respond(c, http.StatusOK, "Appointments fetched", appts)
}

// Chat

func (h *Handlers) Conversation(c *gin.Context) {
	claims := sessionFrom(c)
	respond(c, http.StatusOK, "Messages fetched", h.Store.conversation(claims.UserID, c.Param("peerID")))
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) SendMessage(c *gin.Context) {
	claims := sessionFrom(c)
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		respondErr(c, http.StatusBadRequest, "Message content is required")
		return
	}
	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   claims.UserID,
		ReceiverID: c.Param("peerID"),
		Content:    req.Content,
		SentAt:     time.Now(),
	}
	h.Store.addMessage(msg)
	respond(c, http.StatusCreated, "Message sent", msg)
}

// Notifications

func (h *Handlers) Notifications(c *gin.Context) {
	claims := sessionFrom(c)
	respond(c, http.StatusOK, "Notifications fetched", h.Store.notificationsFor(claims.UserID))
}

func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	claims := sessionFrom(c)
	if !h.Store.markNotificationRead(claims.UserID, c.Param("id")) {
		respondErr(c, http.StatusNotFound, "Notification not found")
		return
	}
	respond(c, http.StatusOK, "Notification marked read", nil)
}

// Admin

func (h *Handlers) AllUsers(c *gin.Context) {
	respond(c, http.StatusOK, "Users fetched", h.Store.allUsers())
}
