// Package dictionary provides the word-lookup collaborators used when the
// deck needs enrichment: Wiktionary for definitions and LibreTranslate for
// translations. Failures degrade to an empty result, never a crash.
package dictionary

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Wiktionary represents a client for the Wiktionary definition API
type Wiktionary struct {
	baseURL string
	client  *http.Client
}

// NewWiktionary creates a new Wiktionary client
func NewWiktionary() *Wiktionary {
	return &Wiktionary{
		baseURL: "https://en.wiktionary.org/api/rest_v1/page/definition",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WordInfo holds the extras Wiktionary knows about a word
type WordInfo struct {
	Definitions []string
	Examples    []string
	Synonyms    []string
	Etymology   string
}

type wiktionaryEntry struct {
	Definitions []struct {
		Definition string `json:"definition"`
		Examples   []struct {
			Text string `json:"text"`
		} `json:"examples"`
	} `json:"definitions"`
	Etymology string   `json:"etymology"`
	Synonyms  []string `json:"synonyms"`
}

// GetWordInfo fetches definitions for a word in the given language.
// Returns nil without error when the word is not found.
func (w *Wiktionary) GetWordInfo(word, language string) (*WordInfo, error) {
	reqURL := fmt.Sprintf("%s/%s/%s", w.baseURL, language, url.PathEscape(strings.ToLower(word)))

	resp, err := w.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from Wiktionary: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Wiktionary returned status %d for word %q", resp.StatusCode, word)
	}

	// Definitions are grouped by language section
	var data map[string][]wiktionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse Wiktionary response: %v", err)
	}

	info := &WordInfo{}
	for _, section := range data {
		for _, entry := range section {
			for _, def := range entry.Definitions {
				if def.Definition != "" {
					info.Definitions = append(info.Definitions, stripTags(def.Definition))
				}
				for _, example := range def.Examples {
					if example.Text != "" {
						info.Examples = append(info.Examples, stripTags(example.Text))
					}
				}
			}
			if info.Etymology == "" && entry.Etymology != "" {
				info.Etymology = stripTags(entry.Etymology)
			}
			info.Synonyms = append(info.Synonyms, entry.Synonyms...)
		}
	}
	return info, nil
}

// stripTags removes the HTML markup Wiktionary embeds in definition text
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
