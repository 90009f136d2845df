// Package notify decides when a review reminder should fire and delivers it.
package notify

import (
	"time"

	"github.com/example/vocablearner/pkg/models"
)

// ShouldNotify reports whether a reminder may fire at the given moment.
// It is a pure predicate; committing last_notified_at after a delivery is
// the caller's responsibility, exactly once per firing.
//
// A reminder fires only when the moment is outside the quiet-hours window,
// the configured cadence has elapsed since the last notification (or none
// was ever sent), and a word is actually available for review.
func ShouldNotify(state models.NotificationState, now time.Time, wordAvailable bool) bool {
	if !wordAvailable {
		return false
	}
	if state.QuietHours.Contains(now) {
		return false
	}
	if state.LastNotifiedAt.IsZero() {
		return true
	}
	return now.Sub(state.LastNotifiedAt) >= time.Duration(state.FrequencyMinutes)*time.Minute
}
