// Package stats derives aggregate learning counters from the record table.
// All computations are pure; the only mutable state is the persisted streak
// pair, which is advanced by the caller on review events.
package stats

import (
	"time"

	"github.com/example/vocablearner/pkg/models"
)

// Compute recalculates session statistics from the record table and the
// persisted streak pair. Calling it twice without an intervening review
// yields identical output.
func Compute(records map[string]models.LearningRecord, streak models.StreakState, now time.Time) models.SessionStats {
	s := models.SessionStats{
		TotalWords: len(records),
		StreakDays: streak.CurrentStreak,
	}

	for _, record := range records {
		switch record.Status {
		case models.StatusKnown:
			s.KnownWords++
		case models.StatusLearning:
			s.LearningWords++
		default:
			s.UnseenWords++
		}
		if !record.LastReviewedAt.IsZero() && SameDay(record.LastReviewedAt, now) {
			s.WordsToday++
		}
	}

	if s.TotalWords > 0 {
		s.ProgressPercent = float64(s.KnownWords) / float64(s.TotalWords) * 100
	}
	return s
}

// UpdateStreak advances the streak pair for a review happening at now.
// Same calendar day: no change. Next day: increment. Longer gap or first
// review ever: reset to 1.
func UpdateStreak(streak models.StreakState, now time.Time) models.StreakState {
	switch {
	case streak.LastActiveDate.IsZero() || streak.CurrentStreak == 0:
		streak.CurrentStreak = 1
	case SameDay(streak.LastActiveDate, now):
		// Already counted today
	case SameDay(streak.LastActiveDate.AddDate(0, 0, 1), now):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}
	streak.LastActiveDate = now
	return streak
}

// UpdateIntro counts one more word introduced from the unseen pool. The
// counter rolls over when the calendar day changes.
func UpdateIntro(intro models.IntroState, now time.Time) models.IntroState {
	if intro.Date.IsZero() || !SameDay(intro.Date, now) {
		intro.Count = 0
	}
	intro.Date = now
	intro.Count++
	return intro
}

// IntroducedToday returns the number of words introduced on the current day
func IntroducedToday(intro models.IntroState, now time.Time) int {
	if intro.Date.IsZero() || !SameDay(intro.Date, now) {
		return 0
	}
	return intro.Count
}

// SameDay reports whether two moments fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
