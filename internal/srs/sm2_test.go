package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocablearner/pkg/models"
)

var t0 = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestApplyAgainResets(t *testing.T) {
	params := DefaultParams()
	record := models.LearningRecord{
		Word:         "der Tisch",
		Status:       models.StatusKnown,
		EaseFactor:   2.5,
		IntervalDays: 30,
		Repetitions:  5,
	}

	updated := params.Apply(record, GradeAgain, t0)

	assert.Equal(t, 0, updated.Repetitions)
	assert.Equal(t, 1, updated.IntervalDays)
	assert.Equal(t, models.StatusLearning, updated.Status)
	assert.InDelta(t, 2.3, updated.EaseFactor, 1e-9)
	assert.Equal(t, t0.AddDate(0, 0, 1), updated.DueAt)
	assert.Equal(t, t0, updated.LastReviewedAt)
	// Input record is untouched
	assert.Equal(t, 5, record.Repetitions)
}

func TestApplyIntervalLadder(t *testing.T) {
	params := DefaultParams()
	record := models.NewLearningRecord("die Katze")

	record = params.Apply(record, GradeGood, t0)
	assert.Equal(t, 1, record.Repetitions)
	assert.Equal(t, 1, record.IntervalDays)
	assert.Equal(t, models.StatusLearning, record.Status)

	record = params.Apply(record, GradeGood, t0.AddDate(0, 0, 1))
	assert.Equal(t, 2, record.Repetitions)
	assert.Equal(t, 6, record.IntervalDays)
	assert.Equal(t, models.StatusLearning, record.Status)

	// Third review: round(6 * 2.5) = 15, still below the known threshold
	record = params.Apply(record, GradeGood, t0.AddDate(0, 0, 7))
	assert.Equal(t, 3, record.Repetitions)
	assert.Equal(t, 15, record.IntervalDays)
	assert.Equal(t, models.StatusLearning, record.Status)

	// Fourth review: round(15 * 2.5) = 38 >= 21 with reps >= 3
	record = params.Apply(record, GradeGood, t0.AddDate(0, 0, 22))
	assert.Equal(t, 4, record.Repetitions)
	assert.Equal(t, 38, record.IntervalDays)
	assert.Equal(t, models.StatusKnown, record.Status)
}

func TestApplyEaseDeltas(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		name  string
		grade Grade
		want  float64
	}{
		{"hard lowers ease", GradeHard, 2.35},
		{"good keeps ease", GradeGood, 2.5},
		{"easy raises ease", GradeEasy, 2.65},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := params.Apply(models.NewLearningRecord("w"), tc.grade, t0)
			assert.InDelta(t, tc.want, record.EaseFactor, 1e-9)
		})
	}
}

func TestApplyEaseNeverBelowFloor(t *testing.T) {
	params := DefaultParams()
	record := models.NewLearningRecord("schwer")

	grades := []Grade{
		GradeAgain, GradeAgain, GradeHard, GradeAgain, GradeHard,
		GradeHard, GradeAgain, GradeAgain, GradeAgain, GradeHard,
		GradeGood, GradeAgain, GradeHard, GradeAgain, GradeAgain,
	}
	now := t0
	for _, grade := range grades {
		record = params.Apply(record, grade, now)
		require.GreaterOrEqual(t, record.EaseFactor, params.EaseFloor)
		require.GreaterOrEqual(t, record.Repetitions, 0)
		require.GreaterOrEqual(t, record.IntervalDays, 1)
		now = now.AddDate(0, 0, 1)
	}
}

func TestApplyIntervalUsesPreReviewEase(t *testing.T) {
	params := DefaultParams()
	record := models.LearningRecord{
		Word:         "w",
		Status:       models.StatusLearning,
		EaseFactor:   2.0,
		IntervalDays: 10,
		Repetitions:  2,
	}

	updated := params.Apply(record, GradeEasy, t0)

	// round(10 * 2.0) = 20, not round(10 * 2.15)
	assert.Equal(t, 20, updated.IntervalDays)
	assert.InDelta(t, 2.15, updated.EaseFactor, 1e-9)
}

func TestApplyMaxIntervalClamp(t *testing.T) {
	params := DefaultParams()
	record := models.LearningRecord{
		Word:         "w",
		Status:       models.StatusKnown,
		EaseFactor:   2.5,
		IntervalDays: 300,
		Repetitions:  8,
	}

	updated := params.Apply(record, GradeGood, t0)
	assert.Equal(t, params.MaxInterval, updated.IntervalDays)
}
