package database

import (
	"fmt"
	"strings"

	"github.com/example/vocablearner/pkg/models"
)

// WordRepository handles database operations for deck entries
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

type wordRow struct {
	Position    int    `db:"position"`
	Word        string `db:"word"`
	Translation string `db:"translation"`
	Example     string `db:"example"`
	Synonyms    string `db:"synonyms"`
	Etymology   string `db:"etymology"`
}

// GetAll returns the deck in load order
func (r *WordRepository) GetAll() ([]models.WordEntry, error) {
	var rows []wordRow
	err := DB.Select(&rows, "SELECT position, word, translation, example, synonyms, etymology FROM words ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}

	entries := make([]models.WordEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.WordEntry{
			Word:        row.Word,
			Translation: row.Translation,
			Example:     row.Example,
			Etymology:   row.Etymology,
		}
		if row.Synonyms != "" {
			entry.Synonyms = strings.Split(row.Synonyms, "|")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReplaceAll swaps the stored deck for the given entries in one transaction
func (r *WordRepository) ReplaceAll(entries []models.WordEntry) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		return fmt.Errorf("failed to clear words: %v", err)
	}

	insert := tx.Rebind("INSERT INTO words (position, word, translation, example, synonyms, etymology) VALUES (?, ?, ?, ?, ?, ?)")
	for i, entry := range entries {
		_, err := tx.Exec(insert,
			i,
			entry.Word,
			entry.Translation,
			entry.Example,
			strings.Join(entry.Synonyms, "|"),
			entry.Etymology,
		)
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %v", entry.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %v", err)
	}
	return nil
}
