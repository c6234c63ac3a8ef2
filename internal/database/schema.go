package database

import "fmt"

// Client-side tables. They mirror the four keyed collections of the local
// store: vocabulary by id, dailyDraws by date, myKnowledge by wordId,
// seenWords by wordId, plus the bot's notification subscribers. Uniqueness is
// enforced here, at the storage boundary, not in application logic. There are
// no foreign keys between them: the local store is per-device bookkeeping and
// a recorded draw must survive a corpus reimport (the drawer treats a
// dangling entry_id as an inconsistent-state error).
var clientSchema = []string{
	`CREATE TABLE IF NOT EXISTS vocabulary (
		id TEXT PRIMARY KEY,
		word TEXT NOT NULL,
		reading TEXT NOT NULL DEFAULT '',
		definition TEXT NOT NULL,
		part_of_speech TEXT NOT NULL,
		language TEXT NOT NULL,
		difficulty_level INTEGER NOT NULL DEFAULT 3,
		frequency_rank INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vocabulary_language ON vocabulary (language)`,
	`CREATE TABLE IF NOT EXISTS daily_draws (
		date TEXT PRIMARY KEY,
		entry_id TEXT NOT NULL,
		drawn_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS my_knowledge (
		word_id TEXT PRIMARY KEY,
		word TEXT NOT NULL,
		reading TEXT NOT NULL DEFAULT '',
		definition TEXT NOT NULL,
		knows BOOLEAN NOT NULL,
		voted_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seen_words (
		word_id TEXT PRIMARY KEY,
		seen_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS subscribers (
		chat_id INTEGER PRIMARY KEY,
		notification_hour INTEGER NOT NULL DEFAULT 9,
		enabled BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Server-side tables: the shared vote aggregate, plus the corpus the ranking
// queries join against.
var serverSchema = []string{
	`CREATE TABLE IF NOT EXISTS vocabulary (
		id TEXT PRIMARY KEY,
		word TEXT NOT NULL,
		reading TEXT NOT NULL DEFAULT '',
		definition TEXT NOT NULL,
		part_of_speech TEXT NOT NULL,
		language TEXT NOT NULL,
		difficulty_level INTEGER NOT NULL DEFAULT 3,
		frequency_rank INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS word_stats (
		word_id TEXT PRIMARY KEY,
		know_count INTEGER NOT NULL DEFAULT 0 CHECK (know_count >= 0),
		unknown_count INTEGER NOT NULL DEFAULT 0 CHECK (unknown_count >= 0),
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureClientSchema creates the local-store tables if they don't exist
func EnsureClientSchema() error {
	return ensureSchema(clientSchema)
}

// EnsureServerSchema creates the backend tables if they don't exist
func EnsureServerSchema() error {
	return ensureSchema(serverSchema)
}

func ensureSchema(statements []string) error {
	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
