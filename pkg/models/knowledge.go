package models

import "time"

// MyKnowledge is the user's one-time vote on a word. Word, Reading and
// Definition are a denormalized snapshot of the entry at vote time, so the
// list views stay correct even if the corpus is reimported later.
type MyKnowledge struct {
	WordID     string    `json:"wordId" db:"word_id"`
	Word       string    `json:"word" db:"word"`
	Reading    string    `json:"reading,omitempty" db:"reading"`
	Definition string    `json:"definition" db:"definition"`
	Knows      bool      `json:"knows" db:"knows"`
	VotedAt    time.Time `json:"votedAt" db:"voted_at"`
}
