// Package vocabulary loads deck files in the supported formats.
package vocabulary

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/vocablearner/pkg/models"
)

// Format of a vocabulary file
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatTSV  Format = "tsv"
	FormatTXT  Format = "txt"
)

// Column name variations accepted in CSV/TSV headers
var (
	wordColumns        = []string{"word", "original", "source"}
	translationColumns = []string{"translation", "target", "meaning"}
	exampleColumns     = []string{"example", "sentence"}
)

// DetectFormat determines the file format from the extension, falling back
// to content sniffing for unknown extensions
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".tsv":
		return FormatTSV
	case ".txt", ".text":
		return FormatTXT
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatTXT
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "["):
			return FormatJSON
		case strings.Contains(line, "\t"):
			return FormatTSV
		case strings.Contains(line, ",") && !strings.HasPrefix(line, "#"):
			return FormatCSV
		}
	}
	return FormatTXT
}

// ParseFile reads a vocabulary file and returns its entries in file order
func ParseFile(path string) ([]models.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %v", err)
	}
	defer f.Close()

	switch DetectFormat(path) {
	case FormatCSV:
		return parseDelimited(f, ',')
	case FormatTSV:
		return parseDelimited(f, '\t')
	case FormatJSON:
		return parseJSON(f)
	default:
		return parseText(f)
	}
}

// parseDelimited handles CSV and TSV files with an optional header row
func parseDelimited(r io.Reader, comma rune) ([]models.WordEntry, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %v", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	wordIdx, translationIdx, exampleIdx := 0, 1, 2
	start := 0
	if hasHeader(rows[0]) {
		wordIdx = columnIndex(rows[0], wordColumns, 0)
		translationIdx = columnIndex(rows[0], translationColumns, 1)
		exampleIdx = columnIndex(rows[0], exampleColumns, 2)
		start = 1
	}

	var entries []models.WordEntry
	for _, row := range rows[start:] {
		word := field(row, wordIdx)
		translation := field(row, translationIdx)
		if word == "" || translation == "" {
			continue
		}
		entries = append(entries, models.WordEntry{
			Word:        word,
			Translation: translation,
			Example:     field(row, exampleIdx),
		})
	}
	return entries, nil
}

func hasHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	for _, name := range wordColumns {
		if first == name {
			return true
		}
	}
	return false
}

func columnIndex(header []string, names []string, fallback int) int {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		for _, name := range names {
			if col == name {
				return i
			}
		}
	}
	return fallback
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseJSON handles a JSON array of entry objects
func parseJSON(r io.Reader) ([]models.WordEntry, error) {
	var raw []models.WordEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %v", err)
	}

	var entries []models.WordEntry
	for _, entry := range raw {
		entry.Word = strings.TrimSpace(entry.Word)
		entry.Translation = strings.TrimSpace(entry.Translation)
		if entry.Word == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Separators tried in order for plain-text lines
var textSeparators = []string{" – ", " — ", " | ", ":", ",", "\t"}

// parseText handles free-form "word – translation" lines. A line without a
// recognized separator is kept as a bare word so the dictionary collaborator
// can fill in the translation later.
func parseText(r io.Reader) ([]models.WordEntry, error) {
	var entries []models.WordEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := models.WordEntry{Word: line}
		for _, sep := range textSeparators {
			if !strings.Contains(line, sep) {
				continue
			}
			parts := strings.SplitN(line, sep, 2)
			entry.Word = strings.TrimSpace(parts[0])
			rest := strings.TrimSpace(parts[1])

			// An example may follow in parentheses or after a semicolon
			if open := strings.Index(rest, "("); open >= 0 && strings.Contains(rest[open:], ")") {
				entry.Translation = strings.TrimSpace(rest[:open])
				entry.Example = strings.TrimSpace(rest[open+1 : open+strings.Index(rest[open:], ")")])
			} else if semi := strings.Index(rest, ";"); semi >= 0 {
				entry.Translation = strings.TrimSpace(rest[:semi])
				entry.Example = strings.TrimSpace(rest[semi+1:])
			} else {
				entry.Translation = rest
			}
			break
		}

		if entry.Word != "" {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %v", err)
	}
	return entries, nil
}
