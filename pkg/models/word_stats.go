package models

// WordStats is the server-owned per-word vote tally. Counters only ever grow.
type WordStats struct {
	WordID       string `json:"wordId" db:"word_id"`
	KnowCount    int    `json:"knowCount" db:"know_count"`
	UnknownCount int    `json:"unknownCount" db:"unknown_count"`
}

// Total returns the sample size for the word
func (s WordStats) Total() int {
	return s.KnowCount + s.UnknownCount
}

// KnowRate returns knowCount / total, or 0 when no votes exist
func (s WordStats) KnowRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.KnowCount) / float64(s.Total())
}

// UnknownRate returns unknownCount / total, or 0 when no votes exist
func (s WordStats) UnknownRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.UnknownCount) / float64(s.Total())
}

// RankingEntry is one row of a know/don't-know ranking projection
type RankingEntry struct {
	ID           string  `json:"id" db:"id"`
	Word         string  `json:"word" db:"word"`
	Reading      string  `json:"reading,omitempty" db:"reading"`
	KnowCount    int     `json:"knowCount" db:"know_count"`
	UnknownCount int     `json:"unknownCount" db:"unknown_count"`
	Rate         float64 `json:"rate" db:"rate"`
}
