package database

import (
	"context"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// SeenWordRepository handles database operations for seen-word bookkeeping
type SeenWordRepository struct{}

// NewSeenWordRepository creates a new repository instance
func NewSeenWordRepository() *SeenWordRepository {
	return &SeenWordRepository{}
}

// GetAll returns every seen-word record
func (r *SeenWordRepository) GetAll(ctx context.Context) ([]models.SeenWord, error) {
	var seen []models.SeenWord
	if err := DB.SelectContext(ctx, &seen, "SELECT word_id, seen_at FROM seen_words"); err != nil {
		return nil, fmt.Errorf("failed to get seen words: %w", err)
	}
	return seen, nil
}

// Exists reports whether a word has been seen
func (r *SeenWordRepository) Exists(ctx context.Context, wordID string) (bool, error) {
	query := rebind("SELECT COUNT(*) FROM seen_words WHERE word_id = ?")
	var count int
	if err := DB.GetContext(ctx, &count, query, wordID); err != nil {
		return false, fmt.Errorf("failed to check seen word: %w", err)
	}
	return count > 0, nil
}

// Create inserts a seen-word record. At most one record exists per word.
func (r *SeenWordRepository) Create(ctx context.Context, seen *models.SeenWord) error {
	query := rebind("INSERT INTO seen_words (word_id, seen_at) VALUES (?, ?)")
	_, err := DB.ExecContext(ctx, query, seen.WordID, seen.SeenAt)
	if err != nil {
		if exists, cerr := r.Exists(ctx, seen.WordID); cerr == nil && exists {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create seen word: %w", err)
	}
	return nil
}
