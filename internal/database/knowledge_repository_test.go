package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordomikuji/pkg/models"
)

func knowledgeFixture(wordID string, knows bool, votedAt time.Time) *models.MyKnowledge {
	return &models.MyKnowledge{
		WordID:     wordID,
		Word:       "word-" + wordID,
		Definition: "definition of " + wordID,
		Knows:      knows,
		VotedAt:    votedAt,
	}
}

func TestKnowledgeRepository_CreateAndGet(t *testing.T) {
	setupClientDB(t)
	repo := NewKnowledgeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-1", true, time.Now())))

	got, err := repo.GetByWordID(ctx, "ja-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Knows)
	assert.Equal(t, "word-ja-1", got.Word)

	exists, err := repo.Exists(ctx, "ja-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestKnowledgeRepository_SecondVoteIsDuplicate(t *testing.T) {
	setupClientDB(t)
	repo := NewKnowledgeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-1", true, time.Now())))

	err := repo.Create(ctx, knowledgeFixture("ja-1", false, time.Now()))
	assert.ErrorIs(t, err, ErrDuplicate)

	// The first vote is immutable
	got, err := repo.GetByWordID(ctx, "ja-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Knows)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestKnowledgeRepository_GetAllNewestFirst(t *testing.T) {
	setupClientDB(t)
	repo := NewKnowledgeRepository()
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-1", true, base)))
	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-2", false, base.Add(24*time.Hour))))
	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-3", true, base.Add(48*time.Hour))))

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "ja-3", list[0].WordID)
	assert.Equal(t, "ja-1", list[2].WordID)
}

func TestKnowledgeRepository_GetByKnows(t *testing.T) {
	setupClientDB(t)
	repo := NewKnowledgeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-1", true, time.Now())))
	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-2", false, time.Now())))
	require.NoError(t, repo.Create(ctx, knowledgeFixture("ja-3", false, time.Now())))

	known, err := repo.GetByKnows(ctx, true)
	require.NoError(t, err)
	require.Len(t, known, 1)
	assert.Equal(t, "ja-1", known[0].WordID)

	unknown, err := repo.GetByKnows(ctx, false)
	require.NoError(t, err)
	assert.Len(t, unknown, 2)
}
