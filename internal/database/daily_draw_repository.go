package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/wordomikuji/pkg/models"
)

// DailyDrawRepository handles database operations for daily draws
type DailyDrawRepository struct{}

// NewDailyDrawRepository creates a new repository instance
func NewDailyDrawRepository() *DailyDrawRepository {
	return &DailyDrawRepository{}
}

// GetByDate returns the draw recorded for a calendar day, or nil when the
// day has no draw yet
func (r *DailyDrawRepository) GetByDate(ctx context.Context, date string) (*models.DailyDraw, error) {
	query := rebind("SELECT date, entry_id, drawn_at FROM daily_draws WHERE date = ?")
	var draw models.DailyDraw
	err := DB.GetContext(ctx, &draw, query, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily draw: %w", err)
	}
	return &draw, nil
}

// Create inserts a new draw. The primary key on date is the sole guard
// against two first-draws-of-the-day racing: the loser gets ErrDuplicate and
// is expected to re-read the winner's row.
func (r *DailyDrawRepository) Create(ctx context.Context, draw *models.DailyDraw) error {
	query := rebind("INSERT INTO daily_draws (date, entry_id, drawn_at) VALUES (?, ?, ?)")
	_, err := DB.ExecContext(ctx, query, draw.Date, draw.EntryID, draw.DrawnAt)
	if err != nil {
		if existing, gerr := r.GetByDate(ctx, draw.Date); gerr == nil && existing != nil {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create daily draw: %w", err)
	}
	return nil
}

// Count returns the number of recorded draws
func (r *DailyDrawRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM daily_draws"); err != nil {
		return 0, fmt.Errorf("failed to count daily draws: %w", err)
	}
	return count, nil
}
