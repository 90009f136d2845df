package srs

import (
	"time"

	"github.com/example/vocablearner/pkg/models"
)

// SelectNext picks the word to present at the given moment.
//
// Priority order: among reviewed records whose due date has passed, the one
// with the earliest due date wins (ties break on deck order). If nothing is
// due, the first unseen word in deck order is introduced, as long as the
// number of words already introduced today stays under the daily budget.
// Returns false if no word is available.
//
// The function is pure: identical inputs always yield the identical word.
func SelectNext(records map[string]models.LearningRecord, order []string, now time.Time, newBudget, introducedToday int) (string, bool) {
	var dueWord string
	var dueAt time.Time

	for _, word := range order {
		record, ok := records[word]
		if !ok || record.Status == models.StatusUnseen {
			continue
		}
		if record.DueAt.After(now) {
			continue
		}
		if dueWord == "" || record.DueAt.Before(dueAt) {
			dueWord = word
			dueAt = record.DueAt
		}
	}
	if dueWord != "" {
		return dueWord, true
	}

	if introducedToday >= newBudget {
		return "", false
	}
	for _, word := range order {
		if record, ok := records[word]; ok && record.Status == models.StatusUnseen {
			return word, true
		}
	}
	return "", false
}
