package models

import "time"

// SessionStats holds aggregate learning counters derived from the record table
type SessionStats struct {
	TotalWords      int     `json:"total_words"`
	KnownWords      int     `json:"known_words"`
	LearningWords   int     `json:"learning_words"`
	UnseenWords     int     `json:"unseen_words"`
	ProgressPercent float64 `json:"progress_percent"`
	WordsToday      int     `json:"words_today"`
	StreakDays      int     `json:"streak_days"`
}

// StreakState is the persisted pair backing the consecutive-day streak.
// It is updated transactionally on every review, never on a read.
type StreakState struct {
	LastActiveDate time.Time `json:"last_active_date"`
	CurrentStreak  int       `json:"current_streak"`
}

// IntroState counts words introduced from the unseen pool on a given day,
// enforcing the daily new-word budget across restarts.
type IntroState struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}
