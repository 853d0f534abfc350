package app

import (
	"context"
	"sync"
	"time"

	"carexpert/booking"
	"carexpert/models"
	"carexpert/notify"
	"carexpert/search"
	"carexpert/session"
	"carexpert/utils"

	"go.uber.org/zap"
)

// DoctorsAPI is the slice of backend surface the doctors page touches.
type DoctorsAPI interface {
	FetchAllDoctors(ctx context.Context) ([]models.Doctor, error)
	BookDirectAppointment(ctx context.Context, draft models.BookingDraft) error
}

// DoctorsPage is the find-a-doctor page shell: one directory fetch on mount,
// client-side search and filtering over the fetched list, and the booking
// dialog. Filter and search changes never refetch.
type DoctorsPage struct {
	mu sync.Mutex

	api      DoctorsAPI
	session  *session.Store
	notifier notify.Notifier

	doctors []models.Doctor
	filters search.Filters

	debouncer *search.Debouncer
	dialog    *booking.Dialog

	cancelFetch context.CancelFunc
	closed      bool
}

// NewDoctorsPage wires the page against the given API surface, session store
// and notifier. window sets the search debounce (zero = default).
func NewDoctorsPage(api DoctorsAPI, store *session.Store, notifier notify.Notifier, window time.Duration) *DoctorsPage {
	p := &DoctorsPage{
		api:      api,
		session:  store,
		notifier: notifier,
		filters:  search.NewFilters(),
		dialog:   booking.NewDialog(api, notifier),
	}
	p.debouncer = search.NewDebouncer(window, p.onDebounced)
	return p
}

// Mount issues the single directory fetch. Success replaces the local list;
// failure surfaces a transient notification with the server message when
// there is one. The fetch is cancelled if the page closes before it lands,
// so nothing updates state after teardown.
func (p *DoctorsPage) Mount(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancelFetch = cancel
	p.mu.Unlock()

	doctors, err := p.api.FetchAllDoctors(fetchCtx)
	if err != nil {
		if fetchCtx.Err() != nil {
			// Torn down mid-flight; stay silent.
			return
		}
		utils.GetLogger().Warn("Failed to fetch doctors", zap.Error(err))
		p.notifier.Error(utils.UserMessage(err, "Something went wrong"))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.doctors = doctors
}

// SetQuery records a keystroke in the search box. The raw value reflects
// immediately; matching lags by the quiescence window.
func (p *DoctorsPage) SetQuery(q string) {
	p.debouncer.Input(q)
}

func (p *DoctorsPage) onDebounced(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.filters.Query = q
}

// Searching reports whether a typed query is still waiting out its window.
func (p *DoctorsPage) Searching() bool {
	return p.debouncer.Searching()
}

// Query returns the raw search box value.
func (p *DoctorsPage) Query() string {
	return p.debouncer.Value()
}

func (p *DoctorsPage) SetSpecialty(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters.Specialty = s
}

func (p *DoctorsPage) SetLocation(l string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters.Location = l
}

// Filtered returns the doctors passing the current filters, a subsequence of
// the fetched list.
func (p *DoctorsPage) Filtered() []models.Doctor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters.Apply(p.doctors)
}

// CountLabel renders the "Showing N doctors" line.
func (p *DoctorsPage) CountLabel() string {
	return search.CountLabel(len(p.Filtered()))
}

// OpenBooking opens the booking dialog for the doctor with the given ID.
// Requires a signed-in patient; anyone else gets a rejection notification.
func (p *DoctorsPage) OpenBooking(doctorID string) bool {
	p.mu.Lock()
	var target *models.Doctor
	for i := range p.doctors {
		if p.doctors[i].ID == doctorID {
			target = &p.doctors[i]
			break
		}
	}
	p.mu.Unlock()

	if target == nil {
		return false
	}
	return p.dialog.Open(p.session.User(), *target)
}

// Booking exposes the dialog for form input and state inspection.
func (p *DoctorsPage) Booking() *booking.Dialog {
	return p.dialog
}

// SubmitBooking submits the open booking form.
func (p *DoctorsPage) SubmitBooking(ctx context.Context) error {
	return p.dialog.Submit(ctx)
}

// Close tears the page down: cancels a directory fetch still in flight,
// cancels any pending debounce timer, and discards an open booking draft.
func (p *DoctorsPage) Close() {
	p.mu.Lock()
	p.closed = true
	cancel := p.cancelFetch
	p.cancelFetch = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.debouncer.Close()
	p.dialog.Close()
}
