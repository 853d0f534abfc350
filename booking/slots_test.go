package booking

import (
	"testing"
	"time"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "17:00" {
		t.Fatalf("expected last slot 17:00, got %s", slots[len(slots)-1])
	}

	// Each slot is 30 minutes after the previous one.
	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse("15:04", slots[i-1])
		if err != nil {
			t.Fatalf("unparseable slot %q: %v", slots[i-1], err)
		}
		cur, err := time.Parse("15:04", slots[i])
		if err != nil {
			t.Fatalf("unparseable slot %q: %v", slots[i], err)
		}
		if cur.Sub(prev) != 30*time.Minute {
			t.Fatalf("expected 30m between %s and %s, got %v", slots[i-1], slots[i], cur.Sub(prev))
		}
	}
}

func Test_minutesToClock(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{minutes: 540, expected: "09:00"},
		{minutes: 570, expected: "09:30"},
		{minutes: 600, expected: "10:00"},
		{minutes: 1020, expected: "17:00"},
	}

	for _, c := range cases {
		got := minutesToClock(c.minutes)
		if got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestMinDate(t *testing.T) {
	now := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	if got := MinDate(now); got != "2026-03-09" {
		t.Fatalf("expected 2026-03-09, got %s", got)
	}
}
