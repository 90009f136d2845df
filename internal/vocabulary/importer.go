package vocabulary

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocablearner/pkg/models"
)

// ImportConfig defines the xlsx import configuration
type ImportConfig struct {
	WordColumn        string // Column with the word
	TranslationColumn string // Column with the translation
	ExampleColumn     string // Column with the example sentence
	SynonymsColumn    string // Column with synonyms, separated by ";"
	EtymologyColumn   string // Column with the etymology
	SheetName         string // Name of the sheet to import
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:        "A",
		TranslationColumn: "B",
		ExampleColumn:     "C",
		SynonymsColumn:    "D",
		EtymologyColumn:   "E",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportXLSX reads deck entries from an Excel file
func ImportXLSX(path string, config ImportConfig) ([]models.WordEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", config.SheetName, err)
	}

	var entries []models.WordEntry
	for i := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow {
			continue
		}

		word, err := cellValue(f, config.SheetName, config.WordColumn, rowNum)
		if err != nil {
			return nil, err
		}
		translation, err := cellValue(f, config.SheetName, config.TranslationColumn, rowNum)
		if err != nil {
			return nil, err
		}
		if word == "" || translation == "" {
			continue
		}

		example, _ := cellValue(f, config.SheetName, config.ExampleColumn, rowNum)
		synonyms, _ := cellValue(f, config.SheetName, config.SynonymsColumn, rowNum)
		etymology, _ := cellValue(f, config.SheetName, config.EtymologyColumn, rowNum)

		entry := models.WordEntry{
			Word:        word,
			Translation: translation,
			Example:     example,
			Etymology:   etymology,
		}
		if synonyms != "" {
			for _, s := range strings.Split(synonyms, ";") {
				if s = strings.TrimSpace(s); s != "" {
					entry.Synonyms = append(entry.Synonyms, s)
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func cellValue(f *excelize.File, sheet, column string, row int) (string, error) {
	if column == "" {
		return "", nil
	}
	value, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", column, row))
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s%d: %v", column, row, err)
	}
	return strings.TrimSpace(value), nil
}
