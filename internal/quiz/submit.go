package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/pkg/models"
)

// KnowledgeStore persists the user's votes
type KnowledgeStore interface {
	Exists(ctx context.Context, wordID string) (bool, error)
	Create(ctx context.Context, k *models.MyKnowledge) error
	GetAll(ctx context.Context) ([]models.MyKnowledge, error)
	GetByKnows(ctx context.Context, knows bool) ([]models.MyKnowledge, error)
}

// Submitter records a one-time vote on a word and marks the word seen.
type Submitter struct {
	knowledge KnowledgeStore
	seen      SeenWordStore
	now       func() time.Time
}

// NewSubmitter creates a submitter over the two stores
func NewSubmitter(knowledge KnowledgeStore, seen SeenWordStore) *Submitter {
	return &Submitter{
		knowledge: knowledge,
		seen:      seen,
		now:       time.Now,
	}
}

// Submit inserts the vote snapshot, then the seen-word record. A second vote
// on the same word fails with ErrAlreadyVoted and leaves the first vote
// untouched. The two inserts are not wrapped in a transaction: if the seen
// insert fails after the vote persisted, the error propagates and the vote
// stays — the partial-failure window is pinned by tests instead of hidden.
func (s *Submitter) Submit(ctx context.Context, entry *models.VocabularyEntry, knows bool) error {
	exists, err := s.knowledge.Exists(ctx, entry.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyVoted
	}

	now := s.now()
	err = s.knowledge.Create(ctx, &models.MyKnowledge{
		WordID:     entry.ID,
		Word:       entry.Word,
		Reading:    entry.Reading,
		Definition: entry.Definition,
		Knows:      knows,
		VotedAt:    now,
	})
	if errors.Is(err, database.ErrDuplicate) {
		// A concurrent vote slipped in between the check and the insert
		return ErrAlreadyVoted
	}
	if err != nil {
		return err
	}

	return s.seen.Create(ctx, &models.SeenWord{
		WordID: entry.ID,
		SeenAt: now,
	})
}

// MyList returns the user's votes, newest first. When knows is non-nil the
// list is filtered to that side.
func (s *Submitter) MyList(ctx context.Context, knows *bool) ([]models.MyKnowledge, error) {
	if knows != nil {
		return s.knowledge.GetByKnows(ctx, *knows)
	}
	return s.knowledge.GetAll(ctx)
}

// HasVoted reports whether the word already has a vote
func (s *Submitter) HasVoted(ctx context.Context, wordID string) (bool, error) {
	return s.knowledge.Exists(ctx, wordID)
}
