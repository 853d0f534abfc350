package app

import (
	"context"
	"testing"

	"carexpert/models"
	"carexpert/notify"
	"carexpert/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ PatientAPI = (*mockPatientAPI)(nil)

type mockPatientAPI struct {
	AppointmentsFunc  func(ctx context.Context) ([]models.Appointment, error)
	CancelFunc        func(ctx context.Context, id string) error
	PrescriptionsFunc func(ctx context.Context) ([]models.Prescription, error)
}

func (m *mockPatientAPI) FetchMyAppointments(ctx context.Context) ([]models.Appointment, error) {
	if m.AppointmentsFunc != nil {
		return m.AppointmentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockPatientAPI) CancelAppointment(ctx context.Context, id string) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, id)
	}
	return nil
}

func (m *mockPatientAPI) FetchPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	if m.PrescriptionsFunc != nil {
		return m.PrescriptionsFunc(ctx)
	}
	return nil, nil
}

func TestPatientDashboardMount(t *testing.T) {
	api := &mockPatientAPI{
		AppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{{ID: "a1", Status: models.AppointmentConfirmed}}, nil
		},
		PrescriptionsFunc: func(ctx context.Context) ([]models.Prescription, error) {
			return []models.Prescription{{ID: "p1"}}, nil
		},
	}
	d := NewPatientDashboard(api, notify.NewCenter())

	d.Mount(context.Background())

	assert.Len(t, d.Appointments(), 1)
	assert.Len(t, d.Prescriptions(), 1)
}

func TestPatientDashboardCancel(t *testing.T) {
	api := &mockPatientAPI{
		AppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{{ID: "a1", Status: models.AppointmentConfirmed}}, nil
		},
	}
	center := notify.NewCenter()
	d := NewPatientDashboard(api, center)
	d.Mount(context.Background())

	require.NoError(t, d.Cancel(context.Background(), "a1"))

	assert.Equal(t, models.AppointmentCancelled, d.Appointments()[0].Status)
	require.NotNil(t, center.Last())
	assert.Equal(t, "Appointment cancelled", center.Last().Message)
}

func TestPatientDashboardCancelFailure(t *testing.T) {
	api := &mockPatientAPI{
		CancelFunc: func(ctx context.Context, id string) error {
			return &utils.APIError{StatusCode: 404, Message: "Appointment not found"}
		},
	}
	center := notify.NewCenter()
	d := NewPatientDashboard(api, center)

	require.Error(t, d.Cancel(context.Background(), "missing"))
	require.NotNil(t, center.Last())
	assert.Equal(t, "Appointment not found", center.Last().Message)
}

var _ DoctorAPI = (*mockDoctorAPI)(nil)

type mockDoctorAPI struct {
	PendingFunc      func(ctx context.Context) ([]models.Appointment, error)
	RespondFunc      func(ctx context.Context, id string, accept bool) error
	AppointmentsFunc func(ctx context.Context) ([]models.Appointment, error)
}

func (m *mockDoctorAPI) FetchPendingRequests(ctx context.Context) ([]models.Appointment, error) {
	if m.PendingFunc != nil {
		return m.PendingFunc(ctx)
	}
	return nil, nil
}

func (m *mockDoctorAPI) RespondToRequest(ctx context.Context, id string, accept bool) error {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, id, accept)
	}
	return nil
}

func (m *mockDoctorAPI) FetchDoctorAppointments(ctx context.Context) ([]models.Appointment, error) {
	if m.AppointmentsFunc != nil {
		return m.AppointmentsFunc(ctx)
	}
	return nil, nil
}

func TestDoctorDashboardRespondRemovesPending(t *testing.T) {
	api := &mockDoctorAPI{
		PendingFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "a1", Status: models.AppointmentPending},
				{ID: "a2", Status: models.AppointmentPending},
			}, nil
		},
	}
	center := notify.NewCenter()
	d := NewDoctorDashboard(api, center)
	d.Mount(context.Background())

	require.NoError(t, d.Respond(context.Background(), "a1", true))

	pending := d.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "a2", pending[0].ID)
	require.NotNil(t, center.Last())
	assert.Equal(t, "Appointment request accepted", center.Last().Message)
}
