package database

import (
	"context"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// KnowledgeRepository handles database operations for the user's votes
type KnowledgeRepository struct{}

// NewKnowledgeRepository creates a new repository instance
func NewKnowledgeRepository() *KnowledgeRepository {
	return &KnowledgeRepository{}
}

const knowledgeColumns = "word_id, word, reading, definition, knows, voted_at"

// Exists reports whether the word already has a vote
func (r *KnowledgeRepository) Exists(ctx context.Context, wordID string) (bool, error) {
	query := rebind("SELECT COUNT(*) FROM my_knowledge WHERE word_id = ?")
	var count int
	if err := DB.GetContext(ctx, &count, query, wordID); err != nil {
		return false, fmt.Errorf("failed to check knowledge: %w", err)
	}
	return count > 0, nil
}

// Create inserts a vote snapshot. The primary key on word_id enforces the
// at-most-once-per-word invariant; a second insert yields ErrDuplicate.
func (r *KnowledgeRepository) Create(ctx context.Context, k *models.MyKnowledge) error {
	query := rebind("INSERT INTO my_knowledge (" + knowledgeColumns + ") VALUES (?, ?, ?, ?, ?, ?)")
	_, err := DB.ExecContext(ctx, query, k.WordID, k.Word, k.Reading, k.Definition, k.Knows, k.VotedAt)
	if err != nil {
		if exists, cerr := r.Exists(ctx, k.WordID); cerr == nil && exists {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create knowledge: %w", err)
	}
	return nil
}

// GetByWordID returns the vote for a word, or nil when none exists
func (r *KnowledgeRepository) GetByWordID(ctx context.Context, wordID string) (*models.MyKnowledge, error) {
	query := rebind("SELECT " + knowledgeColumns + " FROM my_knowledge WHERE word_id = ?")
	var list []models.MyKnowledge
	if err := DB.SelectContext(ctx, &list, query, wordID); err != nil {
		return nil, fmt.Errorf("failed to get knowledge: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// GetAll returns every vote, newest first
func (r *KnowledgeRepository) GetAll(ctx context.Context) ([]models.MyKnowledge, error) {
	var list []models.MyKnowledge
	if err := DB.SelectContext(ctx, &list, "SELECT "+knowledgeColumns+" FROM my_knowledge ORDER BY voted_at DESC, word_id"); err != nil {
		return nil, fmt.Errorf("failed to get knowledge list: %w", err)
	}
	return list, nil
}

// GetByKnows returns votes filtered by the knows flag, newest first
func (r *KnowledgeRepository) GetByKnows(ctx context.Context, knows bool) ([]models.MyKnowledge, error) {
	query := rebind("SELECT " + knowledgeColumns + " FROM my_knowledge WHERE knows = ? ORDER BY voted_at DESC, word_id")
	var list []models.MyKnowledge
	if err := DB.SelectContext(ctx, &list, query, knows); err != nil {
		return nil, fmt.Errorf("failed to get knowledge list: %w", err)
	}
	return list, nil
}

// Count returns the number of votes recorded
func (r *KnowledgeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM my_knowledge"); err != nil {
		return 0, fmt.Errorf("failed to count knowledge: %w", err)
	}
	return count, nil
}
