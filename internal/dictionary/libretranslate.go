package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LibreTranslate represents a client for the LibreTranslate API
type LibreTranslate struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewLibreTranslate creates a new LibreTranslate client. An empty apiKey is
// allowed for public instances.
func NewLibreTranslate(apiKey string) *LibreTranslate {
	return &LibreTranslate{
		apiURL: "https://libretranslate.com/translate",
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate converts text between the given language codes
func (l *LibreTranslate) Translate(text, source, target string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation request: %v", err)
	}

	resp, err := l.client.Post(l.apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to call LibreTranslate: %v", err)
	}
	defer resp.Body.Close()

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse LibreTranslate response: %v", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("LibreTranslate error: %s", result.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LibreTranslate returned status %d", resp.StatusCode)
	}
	return result.TranslatedText, nil
}
