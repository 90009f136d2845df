package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("22:00")
	require.NoError(t, err)
	assert.Equal(t, 22*60, m)

	m, err = ParseClock("06:30")
	require.NoError(t, err)
	assert.Equal(t, 6*60+30, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("evening")
	assert.Error(t, err)
}

func TestQuietHoursContains(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	wrapping := QuietHours{Start: 22 * 60, End: 6 * 60}
	assert.True(t, wrapping.Contains(at(23, 30)))
	assert.True(t, wrapping.Contains(at(0, 15)))
	assert.False(t, wrapping.Contains(at(12, 0)))

	daytime := QuietHours{Start: 9 * 60, End: 17 * 60}
	assert.True(t, daytime.Contains(at(9, 0)))
	assert.False(t, daytime.Contains(at(17, 0)))

	disabled := QuietHours{Start: 8 * 60, End: 8 * 60}
	assert.False(t, disabled.Contains(at(8, 0)))
}

func TestLearningRecordValidate(t *testing.T) {
	valid := NewLearningRecord("der Tisch")
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*LearningRecord)
	}{
		{"empty word", func(r *LearningRecord) { r.Word = "" }},
		{"ease below floor", func(r *LearningRecord) { r.EaseFactor = 1.0 }},
		{"negative interval", func(r *LearningRecord) { r.IntervalDays = -1 }},
		{"negative repetitions", func(r *LearningRecord) { r.Repetitions = -2 }},
		{"known without repetitions", func(r *LearningRecord) { r.Status = StatusKnown }},
		{"bogus status", func(r *LearningRecord) { r.Status = "mastered" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := NewLearningRecord("der Tisch")
			tc.mutate(&record)

			err := record.Validate()
			var invalidErr *InvalidRecordError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}
