package search

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window before a typed query is promoted to
// the matching query.
const DefaultWindow = 400 * time.Millisecond

// Debouncer holds two strings: the immediately-reflected input value and a
// trailing debounced value that only ever takes on a value that stayed
// stable for the full window. Each keystroke cancels and reschedules the
// pending promotion, so large lists are not refiltered per keystroke.
type Debouncer struct {
	mu        sync.Mutex
	window    time.Duration
	timer     *time.Timer
	gen       int // invalidates timers cancelled after firing was scheduled
	value     string
	debounced string
	pending   bool
	closed    bool
	onFlush   func(string)
}

// NewDebouncer creates a debouncer with the given window (DefaultWindow when
// zero). onFlush, if non-nil, is called with the promoted value from the
// timer goroutine after each quiescence window elapses.
func NewDebouncer(window time.Duration, onFlush func(string)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, onFlush: onFlush}
}

// Input records a keystroke: the raw value updates immediately and a pending
// promotion is (re)scheduled for one full window from now.
func (d *Debouncer) Input(s string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.value = s
	d.pending = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
	d.mu.Unlock()
}

func (d *Debouncer) fire(gen int) {
	d.mu.Lock()
	if d.closed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.debounced = d.value
	d.pending = false
	flush := d.onFlush
	v := d.debounced
	d.mu.Unlock()

	if flush != nil {
		flush(v)
	}
}

// Value returns the raw input value.
func (d *Debouncer) Value() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Debounced returns the query to match against.
func (d *Debouncer) Debounced() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.debounced
}

// Searching reports whether a promotion is pending, i.e. the user typed and
// the window has not yet elapsed. Drives the spinner next to the input.
func (d *Debouncer) Searching() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending && d.value != d.debounced
}

// Close cancels any pending promotion. Required on teardown so a timer
// cannot fire into a component that no longer exists.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}
