package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/vocablearner/pkg/models"
)

// Timestamps are stored as RFC3339 strings, dates as YYYY-MM-DD; the empty
// string stands for the zero value.
const dateLayout = "2006-01-02"

// SnapshotRepository persists the session snapshot: the full record table
// plus notification, streak and introduction state. It implements the
// session controller's Store interface.
type SnapshotRepository struct{}

// NewSnapshotRepository creates a new repository instance
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

type recordRow struct {
	Word           string  `db:"word"`
	Status         string  `db:"status"`
	EaseFactor     float64 `db:"ease_factor"`
	IntervalDays   int     `db:"interval_days"`
	Repetitions    int     `db:"repetitions"`
	DueAt          string  `db:"due_at"`
	LastReviewedAt string  `db:"last_reviewed_at"`
}

type stateRow struct {
	ID               int    `db:"id"`
	LastNotifiedAt   string `db:"last_notified_at"`
	QuietStart       int    `db:"quiet_start"`
	QuietEnd         int    `db:"quiet_end"`
	FrequencyMinutes int    `db:"frequency_minutes"`
	LastActiveDate   string `db:"last_active_date"`
	CurrentStreak    int    `db:"current_streak"`
	IntroDate        string `db:"intro_date"`
	IntroCount       int    `db:"intro_count"`
}

// SaveSnapshot writes the snapshot in a single transaction
func (r *SnapshotRepository) SaveSnapshot(snap *models.Snapshot) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM learning_records"); err != nil {
		return fmt.Errorf("failed to clear learning records: %v", err)
	}

	insert := tx.Rebind(`
		INSERT INTO learning_records (word, status, ease_factor, interval_days, repetitions, due_at, last_reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	for _, record := range snap.Records {
		_, err := tx.Exec(insert,
			record.Word,
			string(record.Status),
			record.EaseFactor,
			record.IntervalDays,
			record.Repetitions,
			formatTime(record.DueAt),
			formatTime(record.LastReviewedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert learning record %q: %v", record.Word, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM session_state"); err != nil {
		return fmt.Errorf("failed to clear session state: %v", err)
	}
	insertState := tx.Rebind(`
		INSERT INTO session_state (id, last_notified_at, quiet_start, quiet_end, frequency_minutes,
			last_active_date, current_streak, intro_date, intro_count)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = tx.Exec(insertState,
		formatTime(snap.Notification.LastNotifiedAt),
		snap.Notification.QuietHours.Start,
		snap.Notification.QuietHours.End,
		snap.Notification.FrequencyMinutes,
		formatDate(snap.Streak.LastActiveDate),
		snap.Streak.CurrentStreak,
		formatDate(snap.Intro.Date),
		snap.Intro.Count,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session state: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %v", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot. Returns nil when nothing has been
// saved yet.
func (r *SnapshotRepository) LoadSnapshot() (*models.Snapshot, error) {
	var state stateRow
	err := DB.Get(&state, "SELECT * FROM session_state WHERE id = 1")
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %v", err)
	}

	var rows []recordRow
	if err := DB.Select(&rows, "SELECT * FROM learning_records"); err != nil {
		return nil, fmt.Errorf("failed to load learning records: %v", err)
	}

	snap := &models.Snapshot{
		Records: make(map[string]models.LearningRecord, len(rows)),
		Notification: models.NotificationState{
			LastNotifiedAt:   parseTime(state.LastNotifiedAt),
			QuietHours:       models.QuietHours{Start: state.QuietStart, End: state.QuietEnd},
			FrequencyMinutes: state.FrequencyMinutes,
		},
		Streak: models.StreakState{
			LastActiveDate: parseDate(state.LastActiveDate),
			CurrentStreak:  state.CurrentStreak,
		},
		Intro: models.IntroState{
			Date:  parseDate(state.IntroDate),
			Count: state.IntroCount,
		},
	}

	for _, row := range rows {
		snap.Records[row.Word] = models.LearningRecord{
			Word:           row.Word,
			Status:         models.Status(row.Status),
			EaseFactor:     row.EaseFactor,
			IntervalDays:   row.IntervalDays,
			Repetitions:    row.Repetitions,
			DueAt:          parseTime(row.DueAt),
			LastReviewedAt: parseTime(row.LastReviewedAt),
		}
	}
	return snap, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
