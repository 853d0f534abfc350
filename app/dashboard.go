package app

import (
	"context"
	"sync"

	"carexpert/models"
	"carexpert/notify"
	"carexpert/utils"
)

// PatientAPI is the backend surface of the patient dashboard.
type PatientAPI interface {
	FetchMyAppointments(ctx context.Context) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	FetchPrescriptions(ctx context.Context) ([]models.Prescription, error)
}

// PatientDashboard lists the patient's appointments and prescriptions.
type PatientDashboard struct {
	mu sync.Mutex

	api      PatientAPI
	notifier notify.Notifier

	appointments  []models.Appointment
	prescriptions []models.Prescription
}

func NewPatientDashboard(api PatientAPI, notifier notify.Notifier) *PatientDashboard {
	return &PatientDashboard{api: api, notifier: notifier}
}

// Mount fetches appointments and prescriptions. Each fetch is best effort;
// a failure surfaces one notification and leaves the other list usable.
func (d *PatientDashboard) Mount(ctx context.Context) {
	appts, err := d.api.FetchMyAppointments(ctx)
	if err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to load appointments"))
	} else {
		d.mu.Lock()
		d.appointments = appts
		d.mu.Unlock()
	}

	scripts, err := d.api.FetchPrescriptions(ctx)
	if err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to load prescriptions"))
		return
	}
	d.mu.Lock()
	d.prescriptions = scripts
	d.mu.Unlock()
}

// Cancel cancels one appointment and updates the local list on success.
func (d *PatientDashboard) Cancel(ctx context.Context, appointmentID string) error {
	if err := d.api.CancelAppointment(ctx, appointmentID); err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to cancel appointment"))
		return err
	}
	d.mu.Lock()
	for i := range d.appointments {
		if d.appointments[i].ID == appointmentID {
			d.appointments[i].Status = models.AppointmentCancelled
		}
	}
	d.mu.Unlock()
	d.notifier.Success("Appointment cancelled")
	return nil
}

func (d *PatientDashboard) Appointments() []models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Appointment, len(d.appointments))
	copy(out, d.appointments)
	return out
}

func (d *PatientDashboard) Prescriptions() []models.Prescription {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Prescription, len(d.prescriptions))
	copy(out, d.prescriptions)
	return out
}

// DoctorAPI is the backend surface of the doctor dashboard.
type DoctorAPI interface {
	FetchPendingRequests(ctx context.Context) ([]models.Appointment, error)
	RespondToRequest(ctx context.Context, appointmentID string, accept bool) error
	FetchDoctorAppointments(ctx context.Context) ([]models.Appointment, error)
}

// DoctorDashboard lists a doctor's pending requests and lets them respond.
type DoctorDashboard struct {
	mu sync.Mutex

	api      DoctorAPI
	notifier notify.Notifier

	pending      []models.Appointment
	appointments []models.Appointment
}

func NewDoctorDashboard(api DoctorAPI, notifier notify.Notifier) *DoctorDashboard {
	return &DoctorDashboard{api: api, notifier: notifier}
}

func (d *DoctorDashboard) Mount(ctx context.Context) {
	pending, err := d.api.FetchPendingRequests(ctx)
	if err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to load pending requests"))
	} else {
		d.mu.Lock()
		d.pending = pending
		d.mu.Unlock()
	}

	appts, err := d.api.FetchDoctorAppointments(ctx)
	if err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to load appointments"))
		return
	}
	d.mu.Lock()
	d.appointments = appts
	d.mu.Unlock()
}

// Respond accepts or rejects one pending request and drops it from the
// pending list on success.
func (d *DoctorDashboard) Respond(ctx context.Context, appointmentID string, accept bool) error {
	if err := d.api.RespondToRequest(ctx, appointmentID, accept); err != nil {
		d.notifier.Error(utils.UserMessage(err, "Failed to update request"))
		return err
	}
	d.mu.Lock()
	kept := d.pending[:0]
	for _, a := range d.pending {
		if a.ID != appointmentID {
			kept = append(kept, a)
		}
	}
	d.pending = kept
	d.mu.Unlock()
	if accept {
		d.notifier.Success("Appointment request accepted")
	} else {
		d.notifier.Success("Appointment request rejected")
	}
	return nil
}

func (d *DoctorDashboard) Pending() []models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Appointment, len(d.pending))
	copy(out, d.pending)
	return out
}

func (d *DoctorDashboard) Appointments() []models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Appointment, len(d.appointments))
	copy(out, d.appointments)
	return out
}
