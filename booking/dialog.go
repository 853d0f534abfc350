package booking

import (
	"context"
	"sync"

	"carexpert/models"
	"carexpert/notify"
	"carexpert/utils"

	"go.uber.org/zap"
)

// Dialog state.
type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateSubmitting State = "submitting"
)

// Booker issues the one write request a submitted draft turns into.
type Booker interface {
	BookDirectAppointment(ctx context.Context, draft models.BookingDraft) error
}

// Dialog is the booking form workflow for one doctor at a time:
// closed -> open -> submitting -> closed on success, or back to open with
// the draft intact on failure so the user may edit and retry.
type Dialog struct {
	mu       sync.Mutex
	state    State
	doctor   *models.Doctor
	draft    models.BookingDraft
	booker   Booker
	notifier notify.Notifier
}

func NewDialog(booker Booker, notifier notify.Notifier) *Dialog {
	return &Dialog{state: StateClosed, booker: booker, notifier: notifier}
}

// Open starts a booking for the given doctor. Only a signed-in patient may
// book; anyone else gets a rejection notification and the dialog stays
// closed. Opening always seeds a fresh draft — nothing from a previously
// opened dialog leaks in.
func (d *Dialog) Open(user *models.AuthUser, doctor models.Doctor) bool {
	if !user.IsPatient() {
		d.notifier.Error("Please login as a patient to book appointments")
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateSubmitting {
		return false
	}
	d.doctor = &doctor
	d.draft = models.EmptyDraft()
	d.draft.DoctorID = doctor.ID
	d.state = StateOpen
	return true
}

// Close abandons the form. The draft always resets to its empty shape.
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reset()
}

// reset must be called with mu held.
func (d *Dialog) reset() {
	d.state = StateClosed
	d.doctor = nil
	d.draft = models.EmptyDraft()
}

func (d *Dialog) SetDate(date string) { d.setField(func(dr *models.BookingDraft) { dr.Date = date }) }
func (d *Dialog) SetTime(t string)    { d.setField(func(dr *models.BookingDraft) { dr.Time = t }) }
func (d *Dialog) SetNotes(n string)   { d.setField(func(dr *models.BookingDraft) { dr.Notes = n }) }

// SetType selects the appointment modality; unknown values are ignored.
func (d *Dialog) SetType(t string) {
	if t != models.AppointmentOnline && t != models.AppointmentOffline {
		return
	}
	d.setField(func(dr *models.BookingDraft) { dr.AppointmentType = t })
}

func (d *Dialog) setField(set func(*models.BookingDraft)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateOpen {
		return
	}
	set(&d.draft)
}

// Submit validates and sends the draft. Missing date or time rejects locally
// with a notification and no network call. While a submission is in flight
// further submits are ignored. Success closes and resets the dialog; failure
// surfaces the server message (or a generic fallback) and leaves the dialog
// open with the draft intact.
func (d *Dialog) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StateOpen {
		d.mu.Unlock()
		return nil
	}
	if d.draft.Date == "" || d.draft.Time == "" {
		d.mu.Unlock()
		d.notifier.Error("Please select both date and time")
		return nil
	}
	d.state = StateSubmitting
	draft := d.draft
	d.mu.Unlock()

	err := d.booker.BookDirectAppointment(ctx, draft)

	d.mu.Lock()
	if err != nil {
		// Reopen for edit-and-retry, unless Close() already ran while the
		// request was in flight; a closed dialog stays closed.
		if d.state == StateSubmitting {
			d.state = StateOpen
		}
		d.mu.Unlock()
		utils.GetLogger().Warn("Booking failed", zap.String("doctorID", draft.DoctorID), zap.Error(err))
		d.notifier.Error(utils.UserMessage(err, "Failed to book appointment"))
		return err
	}
	d.reset()
	d.mu.Unlock()
	d.notifier.Success("Appointment booked successfully!")
	return nil
}

// State returns the current workflow state.
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Doctor returns the doctor the open dialog targets, nil when closed.
func (d *Dialog) Doctor() *models.Doctor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doctor
}

// Draft returns a copy of the current draft.
func (d *Dialog) Draft() models.BookingDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}
