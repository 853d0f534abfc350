package booking

import (
	"fmt"
	"time"
)

// Working window for direct booking, in minutes from midnight.
const (
	slotOpenMinutes  = 9 * 60  // 09:00
	slotCloseMinutes = 17 * 60 // 17:00
	slotStepMinutes  = 30
)

// TimeSlots returns the static slot catalog offered in the booking dialog:
// every half hour from 09:00 through 17:00 inclusive. The catalog is fixed
// client-side and intentionally not derived from a doctor's availability.
func TimeSlots() []string {
	var slots []string
	for m := slotOpenMinutes; m <= slotCloseMinutes; m += slotStepMinutes {
		slots = append(slots, minutesToClock(m))
	}
	return slots
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinDate returns the earliest selectable calendar date, today in the local
// calendar. Past-date booking is rejected at the form level.
func MinDate(now time.Time) string {
	return now.Format("2006-01-02")
}
