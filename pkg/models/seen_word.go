package models

import "time"

// SeenWord records that a word has been shown to the user. Seen-marking
// happens on vote, not on mere display: a drawn word that was never voted on
// stays eligible for a future draw.
type SeenWord struct {
	WordID string    `json:"wordId" db:"word_id"`
	SeenAt time.Time `json:"seenAt" db:"seen_at"`
}
