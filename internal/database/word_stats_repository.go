package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// MinRankingSample is the smallest vote total a word needs before it may
// appear in a ranking. Low-sample words would otherwise dominate the rates.
const MinRankingSample = 10

// WordStatsRepository handles database operations for the shared vote
// aggregate
type WordStatsRepository struct{}

// NewWordStatsRepository creates a new repository instance
func NewWordStatsRepository() *WordStatsRepository {
	return &WordStatsRepository{}
}

// ApplyVote records one vote for a word: it creates the stats row on first
// vote, otherwise increments exactly one of the two counters. The whole
// operation is a single conditional upsert so concurrent votes for the same
// word can't lose updates; there is deliberately no read-modify-write here.
func (r *WordStatsRepository) ApplyVote(ctx context.Context, wordID string, knows bool) error {
	know, unknown := 0, 0
	if knows {
		know = 1
	} else {
		unknown = 1
	}

	query := rebind(`
		INSERT INTO word_stats (word_id, know_count, unknown_count)
		VALUES (?, ?, ?)
		ON CONFLICT (word_id) DO UPDATE SET
			know_count = word_stats.know_count + excluded.know_count,
			unknown_count = word_stats.unknown_count + excluded.unknown_count,
			updated_at = CURRENT_TIMESTAMP
	`)
	if _, err := DB.ExecContext(ctx, query, wordID, know, unknown); err != nil {
		return fmt.Errorf("failed to apply vote: %w", err)
	}
	return nil
}

// GetByWordID returns the tally for a word, or nil when it has never been
// voted on
func (r *WordStatsRepository) GetByWordID(ctx context.Context, wordID string) (*models.WordStats, error) {
	query := rebind("SELECT word_id, know_count, unknown_count FROM word_stats WHERE word_id = ?")
	var stats models.WordStats
	err := DB.GetContext(ctx, &stats, query, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word stats: %w", err)
	}
	return &stats, nil
}

// UnknownRanking returns the top words by unknown-rate among words with at
// least MinRankingSample votes. Ties are broken by word id so the order is
// reproducible.
func (r *WordStatsRepository) UnknownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	return r.ranking(ctx, "unknown_count", limit)
}

// KnownRanking returns the top words by know-rate among words with at least
// MinRankingSample votes
func (r *WordStatsRepository) KnownRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	return r.ranking(ctx, "know_count", limit)
}

func (r *WordStatsRepository) ranking(ctx context.Context, counter string, limit int) ([]models.RankingEntry, error) {
	// counter is one of the two column names above, never user input
	query := rebind(fmt.Sprintf(`
		SELECT
			v.id,
			v.word,
			v.reading,
			s.know_count,
			s.unknown_count,
			CAST(s.%s AS REAL) / (s.know_count + s.unknown_count) AS rate
		FROM word_stats s
		JOIN vocabulary v ON v.id = s.word_id
		WHERE s.know_count + s.unknown_count >= %d
		ORDER BY rate DESC, v.id ASC
		LIMIT ?
	`, counter, MinRankingSample))

	entries := make([]models.RankingEntry, 0, limit)
	if err := DB.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}
	return entries, nil
}
