// Package importer loads vocabulary corpus files into the vocabulary table.
// It accepts the JSON array produced by the collection pipeline, plus CSV and
// Excel sheets for hand-maintained word lists.
package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/wordomikuji/pkg/models"
)

// vocabularyStore is the slice of the vocabulary repository the importer needs
type vocabularyStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, entry *models.VocabularyEntry) error
	Update(ctx context.Context, entry *models.VocabularyEntry) error
}

// Config defines the import configuration
type Config struct {
	FilePath string // Path to the JSON, CSV or Excel file
	Language string // Language assigned to rows that don't carry one

	// Column letters for CSV/Excel sources
	IDColumn           string
	WordColumn         string
	ReadingColumn      string
	DefinitionColumn   string
	PartOfSpeechColumn string
	DifficultyColumn   string
	FrequencyColumn    string

	SheetName string // Name of the Excel sheet to import
	StartRow  int    // The row to start importing from (1-based index)
}

// DefaultConfig returns the default import configuration for a file
func DefaultConfig(filePath string) Config {
	return Config{
		FilePath:           filePath,
		Language:           models.LanguageJapanese,
		IDColumn:           "A",
		WordColumn:         "B",
		ReadingColumn:      "C",
		DefinitionColumn:   "D",
		PartOfSpeechColumn: "E",
		DifficultyColumn:   "F",
		FrequencyColumn:    "G",
		SheetName:          "Sheet1",
		StartRow:           2, // Skip the header row
	}
}

// Result holds the outcome of an import operation
type Result struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// Importer runs corpus imports against a vocabulary store
type Importer struct {
	vocab vocabularyStore
}

// New creates an importer over the given store
func New(vocab vocabularyStore) *Importer {
	return &Importer{vocab: vocab}
}

// Import loads the configured file, dispatching on its extension
func (im *Importer) Import(ctx context.Context, cfg Config) (*Result, error) {
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".json":
		return im.importFromJSON(ctx, cfg)
	case ".csv":
		return im.importFromCSV(ctx, cfg)
	default:
		return im.importFromExcel(ctx, cfg)
	}
}

// importFromJSON imports the JSON array exported by the collection pipeline
func (im *Importer) importFromJSON(ctx context.Context, cfg Config) (*Result, error) {
	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSON file: %w", err)
	}

	var entries []models.VocabularyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON corpus: %w", err)
	}

	result := &Result{Errors: make([]string, 0)}
	for i, entry := range entries {
		result.TotalProcessed++
		if entry.ID == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: missing id", i+1))
			continue
		}
		if entry.Language == "" {
			entry.Language = cfg.Language
		}
		if err := im.processEntry(ctx, &entry, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports words from a CSV file
func (im *Importer) importFromCSV(ctx context.Context, cfg Config) (*Result, error) {
	file, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &Result{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < cfg.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := im.processRow(ctx, row, cfg, result, rowNum); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// importFromExcel imports words from an Excel file
func (im *Importer) importFromExcel(ctx context.Context, cfg Config) (*Result, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &Result{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}

		rowNum := i + 1
		result.TotalProcessed++
		if err := im.processRow(ctx, row, cfg, result, rowNum); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow converts one CSV/Excel row into an entry and stores it
func (im *Importer) processRow(ctx context.Context, row []string, cfg Config, result *Result, rowNum int) error {
	cell := func(column string) string {
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	entry := &models.VocabularyEntry{
		ID:              cell(cfg.IDColumn),
		Word:            cell(cfg.WordColumn),
		Reading:         cell(cfg.ReadingColumn),
		Definition:      cell(cfg.DefinitionColumn),
		PartOfSpeech:    cell(cfg.PartOfSpeechColumn),
		Language:        cfg.Language,
		DifficultyLevel: parseIntOrDefault(cell(cfg.DifficultyColumn), 1, 5, 3),
	}
	if raw := cell(cfg.FrequencyColumn); raw != "" {
		if rank, err := parseIntInRange(raw, 1, 1<<30); err == nil {
			entry.FrequencyRank = &rank
		}
	}
	if entry.ID == "" {
		// Hand-maintained sheets rarely carry ids; derive a stable one
		entry.ID = fmt.Sprintf("%s-%d", cfg.Language, rowNum)
	}

	return im.processEntry(ctx, entry, result)
}

// processEntry validates an entry and creates or updates it
func (im *Importer) processEntry(ctx context.Context, entry *models.VocabularyEntry, result *Result) error {
	if entry.Word == "" {
		result.Skipped++
		return fmt.Errorf("word cannot be empty")
	}
	if entry.Definition == "" {
		result.Skipped++
		return fmt.Errorf("definition cannot be empty")
	}
	if !models.ValidLanguage(entry.Language) {
		result.Skipped++
		return fmt.Errorf("unknown language %q", entry.Language)
	}
	if entry.PartOfSpeech == "" {
		entry.PartOfSpeech = models.PartOfSpeechNoun
	}
	if !models.ValidPartOfSpeech(entry.PartOfSpeech) {
		result.Skipped++
		return fmt.Errorf("unknown part of speech %q", entry.PartOfSpeech)
	}
	if entry.DifficultyLevel < 1 || entry.DifficultyLevel > 5 {
		entry.DifficultyLevel = 3
	}

	exists, err := im.vocab.Exists(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing entry: %w", err)
	}
	if exists {
		if err := im.vocab.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}
		result.Updated++
		return nil
	}

	if err := im.vocab.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	result.Created++
	return nil
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// parseIntInRange parses an integer and clamps it into [min, max]
func parseIntInRange(s string, min, max int) (int, error) {
	var val int
	if _, err := fmt.Sscanf(s, "%d", &val); err != nil {
		return min, err
	}
	if val < min {
		return min, nil
	}
	if val > max {
		return max, nil
	}
	return val, nil
}

// parseIntOrDefault parses an integer within a range, falling back to a default
func parseIntOrDefault(s string, min, max, defaultVal int) int {
	if val, err := parseIntInRange(s, min, max); err == nil {
		return val
	}
	return defaultVal
}
