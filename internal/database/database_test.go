package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/wordomikuji/pkg/models"
)

// setupClientDB connects an in-memory SQLite database with the client tables
func setupClientDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Connect(Config{Driver: DriverSQLite, DSN: ":memory:"}))
	require.NoError(t, EnsureClientSchema())
	t.Cleanup(func() { _ = Close() })
}

// setupServerDB connects an in-memory SQLite database with the server tables
func setupServerDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Connect(Config{Driver: DriverSQLite, DSN: ":memory:"}))
	require.NoError(t, EnsureServerSchema())
	t.Cleanup(func() { _ = Close() })
}

func testEntry(id, word string) *models.VocabularyEntry {
	return &models.VocabularyEntry{
		ID:              id,
		Word:            word,
		Reading:         word + "-reading",
		Definition:      "definition of " + word,
		PartOfSpeech:    models.PartOfSpeechNoun,
		Language:        models.LanguageJapanese,
		DifficultyLevel: 3,
	}
}
