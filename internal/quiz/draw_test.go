package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wordomikuji/pkg/models"
)

func corpus(ids ...string) []models.VocabularyEntry {
	entries := make([]models.VocabularyEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, models.VocabularyEntry{
			ID:           id,
			Word:         "word-" + id,
			Definition:   "definition",
			PartOfSpeech: models.PartOfSpeechNoun,
			Language:     models.LanguageJapanese,
		})
	}
	return entries
}

func fixedClock(day string) func() time.Time {
	ts, err := time.Parse(models.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func TestDrawer_DrawIsStableWithinADay(t *testing.T) {
	draws := newMemDraws()
	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1", "ja-2", "ja-3")...),
		draws: draws,
		seen:  newMemSeen(),
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}
	ctx := context.Background()

	first, err := d.Draw(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Even with a pick that would choose differently, the recorded draw wins
	d.pick = func(n int) int { return n - 1 }
	second, err := d.Draw(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, draws.rows, 1)
}

func TestDrawer_NewDayNewDraw(t *testing.T) {
	draws := newMemDraws()
	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1", "ja-2")...),
		draws: draws,
		seen:  newMemSeen(),
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}
	ctx := context.Background()

	_, err := d.Draw(ctx, "")
	require.NoError(t, err)

	d.now = fixedClock("2026-08-29")
	_, err = d.Draw(ctx, "")
	require.NoError(t, err)
	assert.Len(t, draws.rows, 2)
}

func TestDrawer_ExcludesVotedWords(t *testing.T) {
	seen := newMemSeen()
	seen.rows["ja-1"] = models.SeenWord{WordID: "ja-1"}
	seen.rows["ja-3"] = models.SeenWord{WordID: "ja-3"}

	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1", "ja-2", "ja-3")...),
		draws: newMemDraws(),
		seen:  seen,
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}

	entry, err := d.Draw(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "ja-2", entry.ID)
}

func TestDrawer_ExhaustedCorpusWritesNothing(t *testing.T) {
	seen := newMemSeen()
	seen.rows["ja-1"] = models.SeenWord{WordID: "ja-1"}
	seen.rows["ja-2"] = models.SeenWord{WordID: "ja-2"}
	draws := newMemDraws()

	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1", "ja-2")...),
		draws: draws,
		seen:  seen,
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}

	_, err := d.Draw(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoEligibleWord)
	assert.Empty(t, draws.rows)

	// A later retry the same day may still succeed once words free up,
	// because no draw was recorded
	d.seen = newMemSeen()
	entry, err := d.Draw(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestDrawer_EmptyCorpus(t *testing.T) {
	d := &Drawer{
		vocab: newMemVocab(),
		draws: newMemDraws(),
		seen:  newMemSeen(),
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}

	_, err := d.Draw(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoEligibleWord)
}

func TestDrawer_OrphanDrawIsAnError(t *testing.T) {
	draws := newMemDraws()
	draws.rows["2026-08-28"] = models.DailyDraw{Date: "2026-08-28", EntryID: "gone"}

	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1")...),
		draws: draws,
		seen:  newMemSeen(),
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 0 },
	}

	_, err := d.Draw(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing entry")
}

func TestDrawer_LosingTheRaceReturnsTheWinnersWord(t *testing.T) {
	draws := newMemDraws()
	d := &Drawer{
		vocab: newMemVocab(corpus("ja-1", "ja-2")...),
		draws: draws,
		seen:  newMemSeen(),
		now:   fixedClock("2026-08-28"),
		pick:  func(n int) int { return 1 }, // would pick ja-2
	}

	// A competing writer records ja-1 between our read and our insert
	draws.beforeCreate = func() {
		draws.beforeCreate = nil
		draws.rows["2026-08-28"] = models.DailyDraw{Date: "2026-08-28", EntryID: "ja-1"}
	}

	entry, err := d.Draw(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "ja-1", entry.ID)
	assert.Len(t, draws.rows, 1)
}

func TestDrawer_TodayKeyIsZeroPadded(t *testing.T) {
	d := &Drawer{now: func() time.Time {
		return time.Date(2026, 3, 5, 23, 59, 0, 0, time.Local)
	}}
	assert.Equal(t, "2026-03-05", d.Today())
}
