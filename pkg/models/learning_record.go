package models

import (
	"fmt"
	"time"
)

// Status of a word in the learning cycle
type Status string

const (
	StatusUnseen   Status = "unseen"
	StatusLearning Status = "learning"
	StatusKnown    Status = "known"
)

// Default SM-2 parameters for a fresh record
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// LearningRecord tracks the spaced-repetition state for a single word.
// Exactly one record exists per deck entry, keyed by the word text.
type LearningRecord struct {
	Word           string    `json:"word" db:"word"`
	Status         Status    `json:"status" db:"status"`
	EaseFactor     float64   `json:"ease_factor" db:"ease_factor"`
	IntervalDays   int       `json:"interval_days" db:"interval_days"`
	Repetitions    int       `json:"repetitions" db:"repetitions"`
	DueAt          time.Time `json:"due_at" db:"due_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at,omitempty" db:"last_reviewed_at"` // zero value means never reviewed
}

// NewLearningRecord returns a default-initialized record for a word
func NewLearningRecord(word string) LearningRecord {
	return LearningRecord{
		Word:       word,
		Status:     StatusUnseen,
		EaseFactor: DefaultEaseFactor,
	}
}

// Validate checks the record invariants. A record that fails validation
// should be replaced with a default record rather than used.
func (r *LearningRecord) Validate() error {
	switch {
	case r.Word == "":
		return &InvalidRecordError{Word: r.Word, Reason: "empty word"}
	case r.EaseFactor < MinEaseFactor:
		return &InvalidRecordError{Word: r.Word, Reason: fmt.Sprintf("ease factor %.2f below minimum %.2f", r.EaseFactor, MinEaseFactor)}
	case r.IntervalDays < 0:
		return &InvalidRecordError{Word: r.Word, Reason: fmt.Sprintf("negative interval %d", r.IntervalDays)}
	case r.Repetitions < 0:
		return &InvalidRecordError{Word: r.Word, Reason: fmt.Sprintf("negative repetitions %d", r.Repetitions)}
	case r.Repetitions == 0 && r.Status == StatusKnown:
		return &InvalidRecordError{Word: r.Word, Reason: "known status with zero repetitions"}
	case r.Status != StatusUnseen && r.Status != StatusLearning && r.Status != StatusKnown:
		return &InvalidRecordError{Word: r.Word, Reason: fmt.Sprintf("unrecognized status %q", r.Status)}
	}
	return nil
}

// InvalidRecordError reports a loaded record that violates an invariant
type InvalidRecordError struct {
	Word   string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid learning record for %q: %s", e.Word, e.Reason)
}
