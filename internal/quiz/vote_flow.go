package quiz

import (
	"context"

	"github.com/example/wordomikuji/pkg/models"
)

// StatsAPI is the backend the vote flow syncs with
type StatsAPI interface {
	SubmitVote(ctx context.Context, wordID string, knows bool) error
	WordStats(ctx context.Context, wordID string) (*models.WordStats, error)
}

// VoteResult reports what happened after the local vote persisted.
// SyncErr is set when the community tally could not be updated; the local
// vote stands either way and the caller may retry the network leg on its own
// (never the local leg — that one is not idempotent).
type VoteResult struct {
	Stats   *models.WordStats
	SyncErr error
}

// VoteFlow chains the local vote with the backend aggregate: local submit,
// then the vote upload, then a stats fetch for display. Strictly in that
// order, and nothing touches the network if the local step fails.
type VoteFlow struct {
	submitter *Submitter
	api       StatsAPI
}

// NewVoteFlow creates a vote flow over the local submitter and the backend
// client
func NewVoteFlow(submitter *Submitter, api StatsAPI) *VoteFlow {
	return &VoteFlow{submitter: submitter, api: api}
}

// Vote records the vote locally and propagates it to the shared aggregate.
// The returned error covers the local leg only (ErrAlreadyVoted, storage
// failure). A failed upload surfaces as VoteResult.SyncErr; a failed stats
// fetch degrades to a nil Stats with no error at all.
func (f *VoteFlow) Vote(ctx context.Context, entry *models.VocabularyEntry, knows bool) (*VoteResult, error) {
	if err := f.submitter.Submit(ctx, entry, knows); err != nil {
		return nil, err
	}

	if err := f.api.SubmitVote(ctx, entry.ID, knows); err != nil {
		return &VoteResult{SyncErr: err}, nil
	}

	stats, err := f.api.WordStats(ctx, entry.ID)
	if err != nil {
		// Stats display degrades to "unavailable"; the vote is submitted
		return &VoteResult{}, nil
	}
	return &VoteResult{Stats: stats}, nil
}
