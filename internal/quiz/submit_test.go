package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordomikuji/pkg/models"
)

func entryFixture(id string) *models.VocabularyEntry {
	return &models.VocabularyEntry{
		ID:         id,
		Word:       "word-" + id,
		Reading:    "reading-" + id,
		Definition: "definition of " + id,
		Language:   models.LanguageJapanese,
	}
}

func TestSubmitter_SubmitRecordsVoteAndSeen(t *testing.T) {
	knowledge := newMemKnowledge()
	seen := newMemSeen()
	votedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	s := &Submitter{knowledge: knowledge, seen: seen, now: func() time.Time { return votedAt }}

	require.NoError(t, s.Submit(context.Background(), entryFixture("ja-1"), true))

	k := knowledge.rows["ja-1"]
	assert.Equal(t, "word-ja-1", k.Word)
	assert.Equal(t, "reading-ja-1", k.Reading)
	assert.True(t, k.Knows)
	assert.Equal(t, votedAt, k.VotedAt)

	sw, ok := seen.rows["ja-1"]
	require.True(t, ok)
	assert.Equal(t, votedAt, sw.SeenAt)
}

func TestSubmitter_SecondVoteFails(t *testing.T) {
	s := NewSubmitter(newMemKnowledge(), newMemSeen())
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, entryFixture("ja-1"), true))

	err := s.Submit(ctx, entryFixture("ja-1"), false)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	voted, err := s.HasVoted(ctx, "ja-1")
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestSubmitter_ConcurrentDuplicateMapsToAlreadyVoted(t *testing.T) {
	knowledge := newMemKnowledge()
	// Pre-existing row makes the insert collide as if a concurrent vote won
	knowledge.rows["ja-1"] = models.MyKnowledge{WordID: "ja-1", Knows: true}
	s := NewSubmitter(knowledge, newMemSeen())

	err := s.Submit(context.Background(), entryFixture("ja-1"), false)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.True(t, knowledge.rows["ja-1"].Knows)
}

func TestSubmitter_SeenFailureSurfacesButVoteStays(t *testing.T) {
	knowledge := newMemKnowledge()
	seen := newMemSeen()
	seen.createErr = errors.New("disk full")
	s := NewSubmitter(knowledge, seen)

	err := s.Submit(context.Background(), entryFixture("ja-1"), true)
	require.Error(t, err)

	// The vote persisted; only the seen marker is missing
	_, voted := knowledge.rows["ja-1"]
	assert.True(t, voted)
	assert.Empty(t, seen.rows)
}

func TestSubmitter_MyList(t *testing.T) {
	knowledge := newMemKnowledge()
	seen := newMemSeen()
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	now := base
	s := &Submitter{knowledge: knowledge, seen: seen, now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, entryFixture("ja-1"), true))
	now = base.Add(24 * time.Hour)
	require.NoError(t, s.Submit(ctx, entryFixture("ja-2"), false))
	now = base.Add(48 * time.Hour)
	require.NoError(t, s.Submit(ctx, entryFixture("ja-3"), false))

	all, err := s.MyList(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ja-3", all[0].WordID)

	knows := true
	known, err := s.MyList(ctx, &knows)
	require.NoError(t, err)
	require.Len(t, known, 1)
	assert.Equal(t, "ja-1", known[0].WordID)

	knows = false
	unknown, err := s.MyList(ctx, &knows)
	require.NoError(t, err)
	assert.Len(t, unknown, 2)
}
