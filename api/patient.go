package api

import (
	"context"
	"fmt"

	"carexpert/models"
)

// FetchAllDoctors retrieves the full doctor directory. One best-effort read,
// no pagination; filtering happens client-side.
func (c *Client) FetchAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.get(ctx, "/api/patient/fetchAllDoctors", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// BookDirectAppointment submits a booking draft.
func (c *Client) BookDirectAppointment(ctx context.Context, draft models.BookingDraft) error {
	return c.post(ctx, "/api/patient/book-direct-appointment", draft, nil)
}

// FetchMyAppointments lists the signed-in patient's appointments.
func (c *Client) FetchMyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.get(ctx, "/api/patient/appointments", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CancelAppointment cancels one of the patient's appointments.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID string) error {
	path := fmt.Sprintf("/api/patient/appointments/%s/cancel", appointmentID)
	return c.post(ctx, path, nil, nil)
}

// FetchPrescriptions lists prescriptions issued to the signed-in patient.
func (c *Client) FetchPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	var scripts []models.Prescription
	if err := c.get(ctx, "/api/patient/prescriptions", &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}
