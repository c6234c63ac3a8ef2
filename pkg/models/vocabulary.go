package models

// Supported corpus languages
const (
	LanguageJapanese = "ja"
	LanguageEnglish  = "en"
)

// Part-of-speech values used by the corpus
const (
	PartOfSpeechNoun      = "noun"
	PartOfSpeechVerb      = "verb"
	PartOfSpeechAdjective = "adjective"
	PartOfSpeechAdverb    = "adverb"
	PartOfSpeechIdiom     = "idiom"
)

// VocabularyEntry represents one immutable corpus item. Entries are written
// once by the collection pipeline (or the importer) and read-only afterwards.
type VocabularyEntry struct {
	ID              string `json:"id" db:"id"`
	Word            string `json:"word" db:"word"`
	Reading         string `json:"reading,omitempty" db:"reading"` // Phonetic annotation, empty for languages without one
	Definition      string `json:"definition" db:"definition"`
	PartOfSpeech    string `json:"partOfSpeech" db:"part_of_speech"`
	Language        string `json:"language" db:"language"`
	DifficultyLevel int    `json:"difficultyLevel" db:"difficulty_level"` // 1-5 scale of difficulty
	FrequencyRank   *int   `json:"frequencyRank,omitempty" db:"frequency_rank"`
}

// ValidPartOfSpeech reports whether s is one of the known part-of-speech values
func ValidPartOfSpeech(s string) bool {
	switch s {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechIdiom:
		return true
	}
	return false
}

// ValidLanguage reports whether s is a supported corpus language
func ValidLanguage(s string) bool {
	return s == LanguageJapanese || s == LanguageEnglish
}
