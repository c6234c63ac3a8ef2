package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/wordomikuji/pkg/models"
)

const statsUnavailable = "コミュニティ統計は現在取得できません。"

// maxListLines keeps the knowledge list inside one Telegram message
const maxListLines = 30

const (
	callbackVoteKnow    = "vote:know:"
	callbackVoteUnknown = "vote:unknown:"
)

// voteKeyboard builds the 知ってる/知らない buttons for a word
func voteKeyboard(wordID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("知ってる", callbackVoteKnow+wordID),
			tgbotapi.NewInlineKeyboardButtonData("知らない", callbackVoteUnknown+wordID),
		),
	)
}

// parseVoteCallback extracts the word id and the vote side from callback data
func parseVoteCallback(data string) (wordID string, knows bool, ok bool) {
	switch {
	case strings.HasPrefix(data, callbackVoteKnow):
		return strings.TrimPrefix(data, callbackVoteKnow), true, true
	case strings.HasPrefix(data, callbackVoteUnknown):
		return strings.TrimPrefix(data, callbackVoteUnknown), false, true
	}
	return "", false, false
}

// formatWordCard renders today's word
func formatWordCard(entry *models.VocabularyEntry) string {
	var sb strings.Builder
	sb.WriteString("📅 今日の一語\n\n")
	sb.WriteString(entry.Word)
	if entry.Reading != "" {
		sb.WriteString("（" + entry.Reading + "）")
	}
	sb.WriteString("\n【" + partOfSpeechLabel(entry.PartOfSpeech) + "】")
	sb.WriteString(entry.Definition)
	sb.WriteString("\n難易度: " + strings.Repeat("★", entry.DifficultyLevel))
	return sb.String()
}

// formatStatsLine renders a community tally in one line
func formatStatsLine(stats *models.WordStats) string {
	if stats.Total() == 0 {
		return "まだ誰も投票していません。"
	}
	return fmt.Sprintf("みんなの結果: 知ってる %d人 / 知らない %d人（%.0f%%が知ってる）",
		stats.KnowCount, stats.UnknownCount, stats.KnowRate()*100)
}

// formatKnowledgeList renders the user's votes
func formatKnowledgeList(list []models.MyKnowledge) string {
	if len(list) == 0 {
		return "まだ投票した語はありません。/today で今日の一語を引いてみましょう。"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("投票した語（%d語）\n", len(list)))
	for i, k := range list {
		if i >= maxListLines {
			sb.WriteString(fmt.Sprintf("…ほか %d 語", len(list)-maxListLines))
			break
		}
		mark := "✅"
		if !k.Knows {
			mark = "❌"
		}
		sb.WriteString(mark + " " + k.Word)
		if k.Reading != "" {
			sb.WriteString("（" + k.Reading + "）")
		}
		sb.WriteString(" — " + k.Definition + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatRanking renders a community ranking
func formatRanking(title string, entries []models.RankingEntry) string {
	if len(entries) == 0 {
		return "ランキングはまだありません（十分な投票が集まっていません）。"
	}

	var sb strings.Builder
	sb.WriteString("🏆 " + title + "\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, e.Word))
		if e.Reading != "" {
			sb.WriteString("（" + e.Reading + "）")
		}
		sb.WriteString(fmt.Sprintf(" %.0f%% (%d票)\n", e.Rate*100, e.KnowCount+e.UnknownCount))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func partOfSpeechLabel(pos string) string {
	switch pos {
	case models.PartOfSpeechNoun:
		return "名詞"
	case models.PartOfSpeechVerb:
		return "動詞"
	case models.PartOfSpeechAdjective:
		return "形容詞"
	case models.PartOfSpeechAdverb:
		return "副詞"
	case models.PartOfSpeechIdiom:
		return "慣用句"
	}
	return pos
}
