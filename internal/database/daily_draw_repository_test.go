package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordomikuji/pkg/models"
)

func TestDailyDrawRepository_CreateAndGet(t *testing.T) {
	setupClientDB(t)
	repo := NewDailyDrawRepository()
	ctx := context.Background()

	draw := &models.DailyDraw{Date: "2026-08-28", EntryID: "ja-1", DrawnAt: time.Now()}
	require.NoError(t, repo.Create(ctx, draw))

	got, err := repo.GetByDate(ctx, "2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ja-1", got.EntryID)
}

func TestDailyDrawRepository_GetByDateMissing(t *testing.T) {
	setupClientDB(t)
	repo := NewDailyDrawRepository()

	got, err := repo.GetByDate(context.Background(), "2026-08-28")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDailyDrawRepository_SecondDrawSameDayIsDuplicate(t *testing.T) {
	setupClientDB(t)
	repo := NewDailyDrawRepository()
	ctx := context.Background()

	first := &models.DailyDraw{Date: "2026-08-28", EntryID: "ja-1", DrawnAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.DailyDraw{Date: "2026-08-28", EntryID: "ja-2", DrawnAt: time.Now()}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicate)

	// The winner's row is untouched
	got, err := repo.GetByDate(ctx, "2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ja-1", got.EntryID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDailyDrawRepository_DifferentDaysCoexist(t *testing.T) {
	setupClientDB(t)
	repo := NewDailyDrawRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.DailyDraw{Date: "2026-08-27", EntryID: "ja-1", DrawnAt: time.Now()}))
	require.NoError(t, repo.Create(ctx, &models.DailyDraw{Date: "2026-08-28", EntryID: "ja-1", DrawnAt: time.Now()}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
