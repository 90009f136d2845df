package dictionary

import (
	"log"

	"github.com/example/vocablearner/pkg/models"
)

// Client combines the lookup services into a single collaborator that
// enriches a bare word into a full deck entry.
type Client struct {
	wiktionary *Wiktionary
	translator *LibreTranslate
	// Language the learner studies, e.g. "de"
	targetLanguage string
}

// NewClient creates a lookup client for the given target language
func NewClient(targetLanguage, libreTranslateKey string) *Client {
	return &Client{
		wiktionary:     NewWiktionary(),
		translator:     NewLibreTranslate(libreTranslateKey),
		targetLanguage: targetLanguage,
	}
}

// LookupWord fetches what the services know about a word. Returns nil when
// nothing useful was found; individual service failures are logged and the
// lookup proceeds with the remaining service.
func (c *Client) LookupWord(word string) (*models.WordEntry, error) {
	entry := models.WordEntry{Word: word}

	info, err := c.wiktionary.GetWordInfo(word, c.targetLanguage)
	if err != nil {
		log.Printf("Wiktionary lookup failed for %q: %v", word, err)
	}
	if info != nil {
		if len(info.Definitions) > 0 {
			entry.Translation = info.Definitions[0]
		}
		if len(info.Examples) > 0 {
			entry.Example = info.Examples[0]
		}
		entry.Synonyms = info.Synonyms
		entry.Etymology = info.Etymology
	}

	if entry.Translation == "" {
		translated, err := c.translator.Translate(word, c.targetLanguage, "en")
		if err != nil {
			log.Printf("Translation failed for %q: %v", word, err)
		} else if translated != word {
			entry.Translation = translated
		}
	}

	if entry.Translation == "" {
		return nil, nil
	}
	return &entry, nil
}
