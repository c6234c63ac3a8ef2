package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/pkg/models"
)

// VocabularyStore is the corpus the drawer reads from
type VocabularyStore interface {
	GetByID(ctx context.Context, id string) (*models.VocabularyEntry, error)
	GetByLanguage(ctx context.Context, language string) ([]models.VocabularyEntry, error)
}

// DailyDrawStore persists the one-draw-per-day fact
type DailyDrawStore interface {
	GetByDate(ctx context.Context, date string) (*models.DailyDraw, error)
	Create(ctx context.Context, draw *models.DailyDraw) error
}

// SeenWordStore records which words the user has ever voted on
type SeenWordStore interface {
	GetAll(ctx context.Context) ([]models.SeenWord, error)
	Create(ctx context.Context, seen *models.SeenWord) error
}

// Drawer produces exactly one word per calendar day, excluding words the
// user has already voted on. Once a draw is persisted the result is stable
// for the rest of the day.
type Drawer struct {
	vocab VocabularyStore
	draws DailyDrawStore
	seen  SeenWordStore
	now   func() time.Time
	pick  func(n int) int
}

// NewDrawer creates a drawer over the three stores
func NewDrawer(vocab VocabularyStore, draws DailyDrawStore, seen SeenWordStore) *Drawer {
	return &Drawer{
		vocab: vocab,
		draws: draws,
		seen:  seen,
		now:   time.Now,
		pick:  rand.Intn,
	}
}

// Today returns the calendar-day key for the current local time. The key is
// always zero-padded YYYY-MM-DD regardless of locale.
func (d *Drawer) Today() string {
	return d.now().Format(models.DateLayout)
}

// Draw returns today's word, creating a new draw if none exists yet for
// today. language defaults to Japanese. When every word has been voted on it
// returns ErrNoEligibleWord and writes nothing.
func (d *Drawer) Draw(ctx context.Context, language string) (*models.VocabularyEntry, error) {
	if language == "" {
		language = models.LanguageJapanese
	}
	today := d.Today()

	existing, err := d.draws.GetByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return d.resolve(ctx, existing)
	}

	entries, err := d.vocab.GetByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	seen, err := d.seen.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seenIDs := make(map[string]struct{}, len(seen))
	for _, sw := range seen {
		seenIDs[sw.WordID] = struct{}{}
	}

	unseen := entries[:0:0]
	for _, e := range entries {
		if _, ok := seenIDs[e.ID]; !ok {
			unseen = append(unseen, e)
		}
	}
	if len(unseen) == 0 {
		return nil, ErrNoEligibleWord
	}

	selected := unseen[d.pick(len(unseen))]
	draw := &models.DailyDraw{
		Date:    today,
		EntryID: selected.ID,
		DrawnAt: d.now(),
	}
	if err := d.draws.Create(ctx, draw); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			// Lost the first-draw-of-the-day race; return the winner's word
			winner, gerr := d.draws.GetByDate(ctx, today)
			if gerr != nil {
				return nil, gerr
			}
			if winner == nil {
				return nil, fmt.Errorf("daily draw for %s vanished after conflict", today)
			}
			return d.resolve(ctx, winner)
		}
		return nil, err
	}
	return &selected, nil
}

// resolve maps a recorded draw back to its corpus entry. A recorded draw
// whose entry is gone is an inconsistent local store, not a quiet miss.
func (d *Drawer) resolve(ctx context.Context, draw *models.DailyDraw) (*models.VocabularyEntry, error) {
	entry, err := d.vocab.GetByID(ctx, draw.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("daily draw for %s references missing entry %s", draw.Date, draw.EntryID)
	}
	return entry, nil
}
