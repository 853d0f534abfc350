package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"carexpert/booking"
	"carexpert/models"
	"carexpert/notify"
	"carexpert/session"
	"carexpert/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ DoctorsAPI = (*mockAPI)(nil)

type mockAPI struct {
	FetchFunc      func(ctx context.Context) ([]models.Doctor, error)
	BookFunc       func(ctx context.Context, draft models.BookingDraft) error
	FetchCallCount int32
	BookCallCount  int32
}

func (m *mockAPI) FetchAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	atomic.AddInt32(&m.FetchCallCount, 1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

func (m *mockAPI) BookDirectAppointment(ctx context.Context, draft models.BookingDraft) error {
	atomic.AddInt32(&m.BookCallCount, 1)
	if m.BookFunc != nil {
		return m.BookFunc(ctx, draft)
	}
	return nil
}

func twoDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:             "d1",
			Specialty:      "Cardiology",
			ClinicLocation: "New York, NY",
			User:           models.UserSummary{Name: "Dr. Alice Smith"},
		},
		{
			ID:             "d2",
			Specialty:      "Dermatology",
			ClinicLocation: "Los Angeles, CA",
			User:           models.UserSummary{Name: "Dr. Bob Lee"},
		},
	}
}

func patientSession() *session.Store {
	s := session.NewStore()
	s.Set(&models.AuthUser{ID: "u1", Name: "Pat", Role: models.RolePatient})
	return s
}

const pageWindow = 30 * time.Millisecond

func newPage(api DoctorsAPI, store *session.Store) (*DoctorsPage, *notify.Center) {
	center := notify.NewCenter()
	return NewDoctorsPage(api, store, center, pageWindow), center
}

func TestMountFetchesOnce(t *testing.T) {
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		return twoDoctors(), nil
	}}
	page, _ := newPage(api, patientSession())
	defer page.Close()

	page.Mount(context.Background())

	assert.Len(t, page.Filtered(), 2)
	assert.Equal(t, "Showing 2 doctors", page.CountLabel())

	// Filter and search changes never refetch.
	page.SetSpecialty("Dermatology")
	page.SetQuery("bob")
	time.Sleep(3 * pageWindow)
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.FetchCallCount))
}

func TestMountFailureNotifies(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "server message",
			err:      &utils.APIError{StatusCode: 500, Message: "Directory unavailable"},
			expected: "Directory unavailable",
		},
		{
			name:     "server answered without message",
			err:      &utils.APIError{StatusCode: 500},
			expected: "Something went wrong",
		},
		{
			name:     "transport failure",
			err:      context.DeadlineExceeded,
			expected: utils.GenericErrorMessage,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
				return nil, c.err
			}}
			page, center := newPage(api, patientSession())
			defer page.Close()

			page.Mount(context.Background())

			require.NotNil(t, center.Last())
			assert.Equal(t, c.expected, center.Last().Message)
			assert.Empty(t, page.Filtered())
		})
	}
}

func TestDebouncedFiltering(t *testing.T) {
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		return twoDoctors(), nil
	}}
	page, _ := newPage(api, patientSession())
	defer page.Close()
	page.Mount(context.Background())

	page.SetQuery("alice")

	// Inside the quiescence window the filtered result is unchanged.
	assert.Len(t, page.Filtered(), 2)
	assert.True(t, page.Searching())

	time.Sleep(3 * pageWindow)

	filtered := page.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "d1", filtered[0].ID)
	assert.False(t, page.Searching())
	assert.Equal(t, "Showing 1 doctors", page.CountLabel())
}

func TestFilterScenario(t *testing.T) {
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		return twoDoctors(), nil
	}}
	page, _ := newPage(api, patientSession())
	defer page.Close()
	page.Mount(context.Background())

	page.SetSpecialty("Dermatology")
	filtered := page.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "d2", filtered[0].ID)

	page.SetSpecialty("all")
	page.SetLocation("Seattle, WA")
	assert.Empty(t, page.Filtered())
	assert.Equal(t, "Showing 0 doctors", page.CountLabel())
}

func TestOpenBookingSeedsDialog(t *testing.T) {
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		return twoDoctors(), nil
	}}
	page, _ := newPage(api, patientSession())
	defer page.Close()
	page.Mount(context.Background())

	require.True(t, page.OpenBooking("d2"))

	assert.Equal(t, booking.StateOpen, page.Booking().State())
	assert.Equal(t, "d2", page.Booking().Draft().DoctorID)
}

func TestOpenBookingRejectsNonPatient(t *testing.T) {
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		return twoDoctors(), nil
	}}
	store := session.NewStore() // signed out
	page, center := newPage(api, store)
	defer page.Close()
	page.Mount(context.Background())

	assert.False(t, page.OpenBooking("d1"))
	assert.Equal(t, booking.StateClosed, page.Booking().State())
	require.NotNil(t, center.Last())
	assert.Equal(t, "Please login as a patient to book appointments", center.Last().Message)
}

func TestOpenBookingUnknownDoctor(t *testing.T) {
	api := &mockAPI{}
	page, _ := newPage(api, patientSession())
	defer page.Close()
	page.Mount(context.Background())

	assert.False(t, page.OpenBooking("nope"))
}

// Closing the page while the directory fetch is in flight cancels it and
// suppresses any late state update or notification.
func TestCloseCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	api := &mockAPI{FetchFunc: func(ctx context.Context) ([]models.Doctor, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	page, center := newPage(api, patientSession())

	done := make(chan struct{})
	go func() {
		page.Mount(context.Background())
		close(done)
	}()

	<-started
	page.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mount did not return after Close")
	}

	assert.Empty(t, page.Filtered())
	assert.Nil(t, center.Last(), "torn-down page must not raise notifications")
}
