package session

import "fmt"

// UnknownWordError reports an operation that referenced a word with no record
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word: %q", e.Word)
}

// EmptyDeckError reports that no vocabulary is loaded
type EmptyDeckError struct{}

func (e *EmptyDeckError) Error() string {
	return "vocabulary deck is empty"
}
