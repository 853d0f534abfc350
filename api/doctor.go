package api

import (
	"context"
	"fmt"

	"carexpert/models"
)

// FetchPendingRequests lists appointment requests awaiting the signed-in
// doctor's decision.
func (c *Client) FetchPendingRequests(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.get(ctx, "/api/doctor/pending-requests", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

// RespondToRequest accepts or rejects a pending appointment request.
func (c *Client) RespondToRequest(ctx context.Context, appointmentID string, accept bool) error {
	path := fmt.Sprintf("/api/doctor/requests/%s/respond", appointmentID)
	return c.post(ctx, path, respondRequest{Accept: accept}, nil)
}

// FetchDoctorAppointments lists the signed-in doctor's appointments.
func (c *Client) FetchDoctorAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.get(ctx, "/api/doctor/appointments", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
