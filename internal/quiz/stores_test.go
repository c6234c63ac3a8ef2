package quiz

import (
	"context"
	"sort"

	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/pkg/models"
)

// In-memory stores mirroring the repository semantics: missing rows read as
// nil, duplicate inserts fail with database.ErrDuplicate.

type memVocab struct {
	entries map[string]models.VocabularyEntry
}

func newMemVocab(entries ...models.VocabularyEntry) *memVocab {
	m := &memVocab{entries: make(map[string]models.VocabularyEntry)}
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return m
}

func (m *memVocab) GetByID(_ context.Context, id string) (*models.VocabularyEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memVocab) GetByLanguage(_ context.Context, language string) ([]models.VocabularyEntry, error) {
	var out []models.VocabularyEntry
	for _, e := range m.entries {
		if e.Language == language {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memDraws struct {
	rows map[string]models.DailyDraw
	// beforeCreate runs just before the uniqueness check, to simulate a
	// competing writer sneaking in
	beforeCreate func()
}

func newMemDraws() *memDraws {
	return &memDraws{rows: make(map[string]models.DailyDraw)}
}

func (m *memDraws) GetByDate(_ context.Context, date string) (*models.DailyDraw, error) {
	d, ok := m.rows[date]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memDraws) Create(_ context.Context, draw *models.DailyDraw) error {
	if m.beforeCreate != nil {
		m.beforeCreate()
	}
	if _, ok := m.rows[draw.Date]; ok {
		return database.ErrDuplicate
	}
	m.rows[draw.Date] = *draw
	return nil
}

type memSeen struct {
	rows map[string]models.SeenWord
	// createErr, when set, fails every insert
	createErr error
}

func newMemSeen() *memSeen {
	return &memSeen{rows: make(map[string]models.SeenWord)}
}

func (m *memSeen) GetAll(_ context.Context) ([]models.SeenWord, error) {
	var out []models.SeenWord
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSeen) Create(_ context.Context, seen *models.SeenWord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.rows[seen.WordID]; ok {
		return database.ErrDuplicate
	}
	m.rows[seen.WordID] = *seen
	return nil
}

type memKnowledge struct {
	rows map[string]models.MyKnowledge
}

func newMemKnowledge() *memKnowledge {
	return &memKnowledge{rows: make(map[string]models.MyKnowledge)}
}

func (m *memKnowledge) Exists(_ context.Context, wordID string) (bool, error) {
	_, ok := m.rows[wordID]
	return ok, nil
}

func (m *memKnowledge) Create(_ context.Context, k *models.MyKnowledge) error {
	if _, ok := m.rows[k.WordID]; ok {
		return database.ErrDuplicate
	}
	m.rows[k.WordID] = *k
	return nil
}

func (m *memKnowledge) GetAll(_ context.Context) ([]models.MyKnowledge, error) {
	out := make([]models.MyKnowledge, 0, len(m.rows))
	for _, k := range m.rows {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VotedAt.After(out[j].VotedAt) })
	return out, nil
}

func (m *memKnowledge) GetByKnows(ctx context.Context, knows bool) ([]models.MyKnowledge, error) {
	all, _ := m.GetAll(ctx)
	out := all[:0:0]
	for _, k := range all {
		if k.Knows == knows {
			out = append(out, k)
		}
	}
	return out, nil
}
