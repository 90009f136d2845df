package dictionary

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiktionaryGetWordInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/de/haus", r.URL.Path)
		w.Write([]byte(`{
			"de": [{
				"definitions": [{
					"definition": "<i>house</i>, building",
					"examples": [{"text": "Das <b>Haus</b> ist alt."}]
				}],
				"etymology": "From Middle High German hus",
				"synonyms": ["Gebäude"]
			}]
		}`))
	}))
	defer server.Close()

	client := NewWiktionary()
	client.baseURL = server.URL

	info, err := client.GetWordInfo("Haus", "de")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, []string{"house, building"}, info.Definitions)
	assert.Equal(t, []string{"Das Haus ist alt."}, info.Examples)
	assert.Equal(t, []string{"Gebäude"}, info.Synonyms)
	assert.Equal(t, "From Middle High German hus", info.Etymology)
}

func TestWiktionaryNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewWiktionary()
	client.baseURL = server.URL

	info, err := client.GetWordInfo("xyzzy", "de")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestLibreTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"translatedText": "the house"}`))
	}))
	defer server.Close()

	client := NewLibreTranslate("")
	client.apiURL = server.URL

	translated, err := client.Translate("das Haus", "de", "en")
	require.NoError(t, err)
	assert.Equal(t, "the house", translated)
}

func TestLibreTranslateError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "API key required"}`))
	}))
	defer server.Close()

	client := NewLibreTranslate("")
	client.apiURL = server.URL

	_, err := client.Translate("das Haus", "de", "en")
	assert.Error(t, err)
}

func TestClientLookupWordFallsBackToTranslator(t *testing.T) {
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer wiki.Close()
	translate := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translatedText": "the chair"}`))
	}))
	defer translate.Close()

	client := NewClient("de", "")
	client.wiktionary.baseURL = wiki.URL
	client.translator.apiURL = translate.URL

	entry, err := client.LookupWord("der Stuhl")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "der Stuhl", entry.Word)
	assert.Equal(t, "the chair", entry.Translation)
}

func TestClientLookupWordNothingFound(t *testing.T) {
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer wiki.Close()
	translate := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echoing the input means no real translation exists
		w.Write([]byte(`{"translatedText": "xyzzy"}`))
	}))
	defer translate.Close()

	client := NewClient("de", "")
	client.wiktionary.baseURL = wiki.URL
	client.translator.apiURL = translate.URL

	entry, err := client.LookupWord("xyzzy")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
