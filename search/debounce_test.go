package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testWindow = 40 * time.Millisecond

func TestDebouncedLagsInput(t *testing.T) {
	d := NewDebouncer(testWindow, nil)
	defer d.Close()

	d.Input("ali")

	// Before the window elapses the match value is unchanged.
	assert.Equal(t, "ali", d.Value())
	assert.Equal(t, "", d.Debounced())
	assert.True(t, d.Searching())

	time.Sleep(3 * testWindow)
	assert.Equal(t, "ali", d.Debounced())
	assert.False(t, d.Searching())
}

func TestRapidTypingKeepsOnlyLatest(t *testing.T) {
	var mu sync.Mutex
	var flushed []string
	d := NewDebouncer(testWindow, func(v string) {
		mu.Lock()
		flushed = append(flushed, v)
		mu.Unlock()
	})
	defer d.Close()

	// Each keystroke arrives well inside the window of the previous one.
	for _, v := range []string{"a", "al", "ali", "alic", "alice"} {
		d.Input(v)
		time.Sleep(testWindow / 8)
	}

	time.Sleep(3 * testWindow)

	assert.Equal(t, "alice", d.Debounced())
	mu.Lock()
	defer mu.Unlock()
	// Intermediate values were never promoted.
	assert.Equal(t, []string{"alice"}, flushed)
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	var mu sync.Mutex
	fired := false
	d := NewDebouncer(testWindow, func(string) {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	d.Input("alice")
	d.Close()

	time.Sleep(3 * testWindow)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired, "a closed debouncer must not promote")
	assert.Equal(t, "", d.Debounced())
	assert.False(t, d.Searching())
}

func TestInputAfterCloseIsIgnored(t *testing.T) {
	d := NewDebouncer(testWindow, nil)
	d.Close()

	d.Input("alice")
	time.Sleep(2 * testWindow)

	assert.Equal(t, "", d.Debounced())
}

func TestDefaultWindow(t *testing.T) {
	d := NewDebouncer(0, nil)
	defer d.Close()
	assert.Equal(t, DefaultWindow, d.window)
}
