package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/vocablearner/pkg/models"
)

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestComputeCounts(t *testing.T) {
	records := map[string]models.LearningRecord{
		"a": {Word: "a", Status: models.StatusKnown, LastReviewedAt: noon.Add(-1 * time.Hour)},
		"b": {Word: "b", Status: models.StatusLearning, LastReviewedAt: noon.AddDate(0, 0, -1)},
		"c": {Word: "c", Status: models.StatusLearning, LastReviewedAt: noon.Add(-5 * time.Minute)},
		"d": {Word: "d", Status: models.StatusUnseen},
	}
	streak := models.StreakState{LastActiveDate: noon, CurrentStreak: 4}

	s := Compute(records, streak, noon)

	assert.Equal(t, 4, s.TotalWords)
	assert.Equal(t, 1, s.KnownWords)
	assert.Equal(t, 2, s.LearningWords)
	assert.Equal(t, 1, s.UnseenWords)
	assert.Equal(t, 2, s.WordsToday)
	assert.Equal(t, 4, s.StreakDays)
	assert.InDelta(t, 25.0, s.ProgressPercent, 1e-9)
}

func TestComputeEmptyTable(t *testing.T) {
	s := Compute(nil, models.StreakState{}, noon)
	assert.Equal(t, 0, s.TotalWords)
	assert.Zero(t, s.ProgressPercent)
}

func TestComputeIsIdempotent(t *testing.T) {
	records := map[string]models.LearningRecord{
		"a": {Word: "a", Status: models.StatusKnown, LastReviewedAt: noon},
	}
	streak := models.StreakState{LastActiveDate: noon, CurrentStreak: 2}

	first := Compute(records, streak, noon)
	second := Compute(records, streak, noon)
	assert.Equal(t, first, second)
}

func TestUpdateStreak(t *testing.T) {
	t.Run("first review starts at one", func(t *testing.T) {
		streak := UpdateStreak(models.StreakState{}, noon)
		assert.Equal(t, 1, streak.CurrentStreak)
		assert.Equal(t, noon, streak.LastActiveDate)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		streak := models.StreakState{LastActiveDate: noon.Add(-3 * time.Hour), CurrentStreak: 5}
		streak = UpdateStreak(streak, noon)
		assert.Equal(t, 5, streak.CurrentStreak)
	})

	t.Run("next day increments", func(t *testing.T) {
		streak := models.StreakState{LastActiveDate: noon, CurrentStreak: 5}
		streak = UpdateStreak(streak, noon.AddDate(0, 0, 1))
		assert.Equal(t, 6, streak.CurrentStreak)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		streak := models.StreakState{LastActiveDate: noon, CurrentStreak: 5}
		streak = UpdateStreak(streak, noon.AddDate(0, 0, 3))
		assert.Equal(t, 1, streak.CurrentStreak)
	})
}

func TestUpdateIntro(t *testing.T) {
	intro := UpdateIntro(models.IntroState{}, noon)
	assert.Equal(t, 1, intro.Count)

	intro = UpdateIntro(intro, noon.Add(time.Hour))
	assert.Equal(t, 2, intro.Count)

	// Counter rolls over on a new day
	intro = UpdateIntro(intro, noon.AddDate(0, 0, 1))
	assert.Equal(t, 1, intro.Count)
}

func TestIntroducedToday(t *testing.T) {
	intro := models.IntroState{Date: noon, Count: 7}
	assert.Equal(t, 7, IntroducedToday(intro, noon.Add(2*time.Hour)))
	assert.Equal(t, 0, IntroducedToday(intro, noon.AddDate(0, 0, 1)))
	assert.Equal(t, 0, IntroducedToday(models.IntroState{}, noon))
}
