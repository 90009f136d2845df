// Package session orchestrates the learning engine: it owns the record table
// and the notification state, and is the only place either is mutated.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/example/vocablearner/internal/notify"
	"github.com/example/vocablearner/internal/srs"
	"github.com/example/vocablearner/internal/stats"
	"github.com/example/vocablearner/pkg/models"
)

// Clock supplies the current time; injectable for tests
type Clock func() time.Time

// Store persists and reloads the session snapshot
type Store interface {
	LoadSnapshot() (*models.Snapshot, error)
	SaveSnapshot(*models.Snapshot) error
}

// Config holds the controller settings
type Config struct {
	// SM-2 thresholds; nil means defaults
	Params *srs.Params
	// Maximum number of new words introduced per day
	WordsPerDay int
	// Reminder suppression window
	QuietHours models.QuietHours
	// Minimum minutes between reminders
	FrequencyMinutes int
	// Snapshot persistence; nil disables saving
	Store Store
	// Time source; nil means time.Now
	Clock Clock
}

// Controller is the single mutation gateway over the learning state.
// All operations are serialized by one mutex, so a scheduler tick racing a
// user action never observes a partially-updated table.
type Controller struct {
	mu sync.Mutex

	params      *srs.Params
	wordsPerDay int
	store       Store
	clock       Clock

	entries []models.WordEntry
	index   map[string]models.WordEntry
	order   []string

	records      map[string]models.LearningRecord
	notification models.NotificationState
	streak       models.StreakState
	intro        models.IntroState
}

// New creates a controller over the given deck with default-initialized
// records. Duplicate words keep their first occurrence.
func New(entries []models.WordEntry, cfg Config) *Controller {
	c := &Controller{
		params:      cfg.Params,
		wordsPerDay: cfg.WordsPerDay,
		store:       cfg.Store,
		clock:       cfg.Clock,
		index:       make(map[string]models.WordEntry),
		records:     make(map[string]models.LearningRecord),
		notification: models.NotificationState{
			QuietHours:       cfg.QuietHours,
			FrequencyMinutes: cfg.FrequencyMinutes,
		},
	}
	if c.params == nil {
		c.params = srs.DefaultParams()
	}
	if c.wordsPerDay <= 0 {
		c.wordsPerDay = 10
	}
	if c.clock == nil {
		c.clock = time.Now
	}

	for _, entry := range entries {
		if _, ok := c.index[entry.Word]; ok {
			continue
		}
		c.entries = append(c.entries, entry)
		c.index[entry.Word] = entry
		c.order = append(c.order, entry.Word)
		c.records[entry.Word] = models.NewLearningRecord(entry.Word)
	}
	return c
}

// Restore applies a previously saved snapshot. Records for words no longer
// in the deck are dropped; records that violate an invariant are replaced by
// defaults for that word only and reported, never fatal.
func (c *Controller) Restore(snap *models.Snapshot) []error {
	if snap == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var invalid []error
	for word, record := range snap.Records {
		if _, ok := c.index[word]; !ok {
			continue
		}
		if err := record.Validate(); err != nil {
			invalid = append(invalid, err)
			c.records[word] = models.NewLearningRecord(word)
			continue
		}
		c.records[word] = record
	}

	// Quiet hours and cadence come from configuration; only the delivery
	// timestamp carries over between runs
	c.notification.LastNotifiedAt = snap.Notification.LastNotifiedAt
	c.streak = snap.Streak
	c.intro = snap.Intro
	return invalid
}

// NextWord returns the entry to review now, or nil when nothing is due and
// the daily new-word budget is spent. Returns EmptyDeckError for an empty deck.
func (c *Controller) NextWord() (*models.WordEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return nil, &EmptyDeckError{}
	}
	now := c.clock()
	word, ok := srs.SelectNext(c.records, c.order, now, c.wordsPerDay, stats.IntroducedToday(c.intro, now))
	if !ok {
		return nil, nil
	}
	entry := c.index[word]
	return &entry, nil
}

// MarkKnown registers a successful recall for the word
func (c *Controller) MarkKnown(word string) error {
	return c.Grade(word, srs.GradeEasy)
}

// MarkUnknown registers a failed recall for the word
func (c *Controller) MarkUnknown(word string) error {
	return c.Grade(word, srs.GradeAgain)
}

// Grade applies a review result to the word's record and advances the
// streak and daily-introduction counters.
func (c *Controller) Grade(word string, grade srs.Grade) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[word]
	if !ok {
		return &UnknownWordError{Word: word}
	}

	now := c.clock()
	wasUnseen := record.Status == models.StatusUnseen

	// Computed into a new value and swapped in only after success
	c.records[word] = c.params.Apply(record, grade, now)
	c.streak = stats.UpdateStreak(c.streak, now)
	if wasUnseen {
		c.intro = stats.UpdateIntro(c.intro, now)
	}

	c.persist()
	return nil
}

// ResetProgress reinitializes every record to defaults and clears the
// streak and introduction state
func (c *Controller) ResetProgress() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for word := range c.records {
		c.records[word] = models.NewLearningRecord(word)
	}
	c.streak = models.StreakState{}
	c.intro = models.IntroState{}
	c.persist()
}

// CurrentStats recomputes session statistics from the record table
func (c *Controller) CurrentStats() models.SessionStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.Compute(c.records, c.streak, c.clock())
}

// ExportProgress produces an immutable copy of the full learning state plus
// deck metadata for external persistence
func (c *Controller) ExportProgress() models.ExportData {
	c.mu.Lock()
	defer c.mu.Unlock()

	export := models.ExportData{
		Entries:      make([]models.WordEntry, len(c.entries)),
		Records:      make(map[string]models.LearningRecord, len(c.records)),
		Stats:        stats.Compute(c.records, c.streak, c.clock()),
		Notification: c.notification,
	}
	copy(export.Entries, c.entries)
	for word, record := range c.records {
		export.Records[word] = record
	}
	return export
}

// ShouldNotify reports whether a reminder should fire now. It does not
// mutate state; the caller commits the firing through OnNotified.
func (c *Controller) ShouldNotify() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	_, available := srs.SelectNext(c.records, c.order, now, c.wordsPerDay, stats.IntroducedToday(c.intro, now))
	return notify.ShouldNotify(c.notification, now, available)
}

// OnNotified records that a reminder was delivered now
func (c *Controller) OnNotified() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notification.LastNotifiedAt = c.clock()
	c.persist()
}

// Snapshot returns a copy of the persisted state. Callers must not hold the
// returned maps across further mutations.
func (c *Controller) Snapshot() *models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() *models.Snapshot {
	snap := &models.Snapshot{
		Records:      make(map[string]models.LearningRecord, len(c.records)),
		Notification: c.notification,
		Streak:       c.streak,
		Intro:        c.intro,
	}
	for word, record := range c.records {
		snap.Records[word] = record
	}
	return snap
}

// persist saves the snapshot through the store, if one is configured.
// Persistence failures are logged and never corrupt the in-memory table.
func (c *Controller) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveSnapshot(c.snapshotLocked()); err != nil {
		log.Printf("Error saving snapshot: %v", err)
	}
}
