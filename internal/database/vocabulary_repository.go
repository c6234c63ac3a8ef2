package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// VocabularyRepository handles database operations for corpus entries
type VocabularyRepository struct{}

// NewVocabularyRepository creates a new repository instance
func NewVocabularyRepository() *VocabularyRepository {
	return &VocabularyRepository{}
}

const vocabularyColumns = "id, word, reading, definition, part_of_speech, language, difficulty_level, frequency_rank"

// GetByID returns the entry with the given id, or nil when it doesn't exist
func (r *VocabularyRepository) GetByID(ctx context.Context, id string) (*models.VocabularyEntry, error) {
	query := rebind("SELECT " + vocabularyColumns + " FROM vocabulary WHERE id = ?")
	var entry models.VocabularyEntry
	err := DB.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary entry: %w", err)
	}
	return &entry, nil
}

// GetByLanguage returns all entries for a language, ordered by id
func (r *VocabularyRepository) GetByLanguage(ctx context.Context, language string) ([]models.VocabularyEntry, error) {
	query := rebind("SELECT " + vocabularyColumns + " FROM vocabulary WHERE language = ? ORDER BY id")
	var entries []models.VocabularyEntry
	if err := DB.SelectContext(ctx, &entries, query, language); err != nil {
		return nil, fmt.Errorf("failed to get vocabulary by language: %w", err)
	}
	return entries, nil
}

// GetAll returns the whole corpus, ordered by id
func (r *VocabularyRepository) GetAll(ctx context.Context) ([]models.VocabularyEntry, error) {
	var entries []models.VocabularyEntry
	if err := DB.SelectContext(ctx, &entries, "SELECT "+vocabularyColumns+" FROM vocabulary ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get vocabulary: %w", err)
	}
	return entries, nil
}

// Exists reports whether an entry with the given id is present
func (r *VocabularyRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := rebind("SELECT COUNT(*) FROM vocabulary WHERE id = ?")
	var count int
	if err := DB.GetContext(ctx, &count, query, id); err != nil {
		return false, fmt.Errorf("failed to check vocabulary entry: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new corpus entry
func (r *VocabularyRepository) Create(ctx context.Context, entry *models.VocabularyEntry) error {
	query := rebind(`
		INSERT INTO vocabulary (id, word, reading, definition, part_of_speech, language, difficulty_level, frequency_rank)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := DB.ExecContext(ctx, query,
		entry.ID,
		entry.Word,
		entry.Reading,
		entry.Definition,
		entry.PartOfSpeech,
		entry.Language,
		entry.DifficultyLevel,
		entry.FrequencyRank,
	)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary entry: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing entry. Only the importer
// uses this, when reimporting a corpus file.
func (r *VocabularyRepository) Update(ctx context.Context, entry *models.VocabularyEntry) error {
	query := rebind(`
		UPDATE vocabulary SET
			word = ?,
			reading = ?,
			definition = ?,
			part_of_speech = ?,
			language = ?,
			difficulty_level = ?,
			frequency_rank = ?
		WHERE id = ?
	`)
	result, err := DB.ExecContext(ctx, query,
		entry.Word,
		entry.Reading,
		entry.Definition,
		entry.PartOfSpeech,
		entry.Language,
		entry.DifficultyLevel,
		entry.FrequencyRank,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vocabulary entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vocabulary entry %s not found", entry.ID)
	}
	return nil
}

// CountByLanguage returns the corpus size for a language
func (r *VocabularyRepository) CountByLanguage(ctx context.Context, language string) (int, error) {
	query := rebind("SELECT COUNT(*) FROM vocabulary WHERE language = ?")
	var count int
	if err := DB.GetContext(ctx, &count, query, language); err != nil {
		return 0, fmt.Errorf("failed to count vocabulary: %w", err)
	}
	return count, nil
}
