package models

// WordEntry represents a single vocabulary entry in the deck.
// Entries are created once at deck load and never mutated.
type WordEntry struct {
	Word        string   `json:"word" db:"word"`
	Translation string   `json:"translation" db:"translation"`
	Example     string   `json:"example,omitempty" db:"example"`
	Synonyms    []string `json:"synonyms,omitempty"`
	Etymology   string   `json:"etymology,omitempty" db:"etymology"`
}
