package srs

import (
	"math"
	"time"

	"github.com/example/vocablearner/pkg/models"
)

// Grade represents the quality of recall reported for a review
type Grade int

const (
	// Could not recall the word
	GradeAgain Grade = iota
	// Recalled with significant effort
	GradeHard
	// Recalled correctly
	GradeGood
	// Recalled instantly
	GradeEasy
)

// Params holds the tunable thresholds of the scheduling algorithm
type Params struct {
	// Lower bound for the ease factor
	EaseFloor float64
	// Ease factor penalty for a failed review
	AgainPenalty float64
	// Ease factor penalty for a hard review
	HardPenalty float64
	// Ease factor bonus for an easy review
	EasyBonus float64
	// Interval in days after the first successful review
	FirstInterval int
	// Interval in days after the second successful review
	SecondInterval int
	// Maximum review interval in days
	MaxInterval int
	// Minimum repetitions before a word can be considered known
	KnownMinRepetitions int
	// Minimum interval in days before a word can be considered known
	KnownMinInterval int
}

// DefaultParams returns the standard SM-2 thresholds
func DefaultParams() *Params {
	return &Params{
		EaseFloor:           models.MinEaseFactor,
		AgainPenalty:        0.2,
		HardPenalty:         0.15,
		EasyBonus:           0.15,
		FirstInterval:       1,
		SecondInterval:      6,
		MaxInterval:         365,
		KnownMinRepetitions: 3,
		KnownMinInterval:    21,
	}
}

// Apply runs the SM-2 update for a single review and returns the new record.
// The input record is not modified; the result is computed fully before the
// caller swaps it into the table.
func (p *Params) Apply(record models.LearningRecord, grade Grade, now time.Time) models.LearningRecord {
	record.LastReviewedAt = now

	if grade == GradeAgain {
		record.Repetitions = 0
		record.IntervalDays = p.FirstInterval
		record.EaseFactor = math.Max(p.EaseFloor, record.EaseFactor-p.AgainPenalty)
		record.Status = models.StatusLearning
		record.DueAt = now.AddDate(0, 0, record.IntervalDays)
		return record
	}

	record.Repetitions++

	// The interval ladder uses the ease factor from before this review
	var interval int
	switch record.Repetitions {
	case 1:
		interval = p.FirstInterval
	case 2:
		interval = p.SecondInterval
	default:
		interval = int(math.Round(float64(record.IntervalDays) * record.EaseFactor))
	}
	if interval < 1 {
		interval = 1
	}
	if interval > p.MaxInterval {
		interval = p.MaxInterval
	}
	record.IntervalDays = interval

	switch grade {
	case GradeHard:
		record.EaseFactor -= p.HardPenalty
	case GradeEasy:
		record.EaseFactor += p.EasyBonus
	}
	if record.EaseFactor < p.EaseFloor {
		record.EaseFactor = p.EaseFloor
	}

	if record.Repetitions >= p.KnownMinRepetitions && record.IntervalDays >= p.KnownMinInterval {
		record.Status = models.StatusKnown
	} else {
		record.Status = models.StatusLearning
	}
	record.DueAt = now.AddDate(0, 0, record.IntervalDays)

	return record
}
