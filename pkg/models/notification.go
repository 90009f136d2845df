package models

import (
	"fmt"
	"time"
)

// QuietHours is a time-of-day window during which reminders are suppressed.
// Start and End are minutes since midnight; the window wraps midnight when
// End < Start. Equal Start and End means no quiet hours.
type QuietHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseClock parses a "HH:MM" string into minutes since midnight
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %v", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Contains reports whether the given moment falls inside the window
func (q QuietHours) Contains(now time.Time) bool {
	if q.Start == q.End {
		return false
	}
	m := now.Hour()*60 + now.Minute()
	if q.Start < q.End {
		return m >= q.Start && m < q.End
	}
	// Window wraps midnight
	return m >= q.Start || m < q.End
}

// NotificationState drives the reminder timing decision
type NotificationState struct {
	LastNotifiedAt   time.Time  `json:"last_notified_at,omitempty"` // zero value means never notified
	QuietHours       QuietHours `json:"quiet_hours"`
	FrequencyMinutes int        `json:"frequency_minutes"`
}
