package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/wordomikuji/internal/quiz"
)

const defaultNotificationHour = 9

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start", "help":
		return b.reply(chatID, helpText)
	case "today":
		return b.sendTodayCard(ctx, chatID)
	case "list":
		return b.handleList(ctx, chatID, args)
	case "ranking":
		return b.handleRanking(ctx, chatID, args)
	case "subscribe":
		return b.handleSubscribe(ctx, chatID, args)
	case "unsubscribe":
		if err := b.subs.Unsubscribe(ctx, chatID); err != nil {
			return err
		}
		return b.reply(chatID, "毎日の通知を停止しました。")
	default:
		return b.reply(chatID, "⚠️ 不明なコマンドです。/help をご覧ください。")
	}
}

// sendTodayCard draws (or re-reads) today's word and sends it. An already
// voted word gets its community stats instead of vote buttons.
func (b *Bot) sendTodayCard(ctx context.Context, chatID int64) error {
	entry, err := b.drawer.Draw(ctx, b.language)
	if errors.Is(err, quiz.ErrNoEligibleWord) {
		return b.reply(chatID, "語彙をすべて引き切りました！今日の一語はありません。")
	}
	if err != nil {
		return err
	}

	voted, err := b.submitter.HasVoted(ctx, entry.ID)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, formatWordCard(entry))
	if voted {
		stats, serr := b.backend.WordStats(ctx, entry.ID)
		if serr != nil {
			msg.Text += "\n\n投票済みです。" + statsUnavailable
		} else {
			msg.Text += "\n\n投票済みです。\n" + formatStatsLine(stats)
		}
		return b.send(msg)
	}

	msg.ReplyMarkup = voteKeyboard(entry.ID)
	return b.send(msg)
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	// Always answer the callback so the client stops its spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.log.Warn("failed to answer callback", "error", err)
	}

	wordID, knows, ok := parseVoteCallback(callback.Data)
	if !ok {
		return b.reply(callback.Message.Chat.ID, "⚠️ 不明な操作です。")
	}
	chatID := callback.Message.Chat.ID

	entry, err := b.vocab.GetByID(ctx, wordID)
	if err != nil {
		return err
	}
	if entry == nil {
		return b.reply(chatID, "⚠️ この語は見つかりませんでした。")
	}

	result, err := b.flow.Vote(ctx, entry, knows)
	if errors.Is(err, quiz.ErrAlreadyVoted) {
		return b.reply(chatID, "この語は既に投票済みです。")
	}
	if err != nil {
		return err
	}

	text := "投票を記録しました！"
	switch {
	case result.SyncErr != nil:
		b.log.Warn("vote sync failed", "wordId", wordID, "error", result.SyncErr)
		text += "\n（コミュニティへの送信に失敗しました）"
	case result.Stats != nil:
		text += "\n" + formatStatsLine(result.Stats)
	default:
		text += "\n" + statsUnavailable
	}
	return b.reply(chatID, text)
}

func (b *Bot) handleList(ctx context.Context, chatID int64, args string) error {
	var knows *bool
	switch args {
	case "known":
		v := true
		knows = &v
	case "unknown":
		v := false
		knows = &v
	}

	list, err := b.submitter.MyList(ctx, knows)
	if err != nil {
		return err
	}
	return b.reply(chatID, formatKnowledgeList(list))
}

func (b *Bot) handleRanking(ctx context.Context, chatID int64, args string) error {
	const limit = 10

	if args == "known" {
		entries, err := b.backend.KnownRanking(ctx, limit)
		if err != nil {
			return b.reply(chatID, statsUnavailable)
		}
		return b.reply(chatID, formatRanking("みんなが知ってる語", entries))
	}

	entries, err := b.backend.UnknownRanking(ctx, limit)
	if err != nil {
		return b.reply(chatID, statsUnavailable)
	}
	return b.reply(chatID, formatRanking("みんなが知らない語", entries))
}

func (b *Bot) handleSubscribe(ctx context.Context, chatID int64, args string) error {
	hour := defaultNotificationHour
	if args != "" {
		parsed, err := strconv.Atoi(args)
		if err != nil || parsed < 0 || parsed > 23 {
			return b.reply(chatID, "時刻は 0〜23 で指定してください: /subscribe <時>")
		}
		hour = parsed
	}

	if err := b.subs.Subscribe(ctx, chatID, hour); err != nil {
		return err
	}
	return b.reply(chatID, "毎日 "+strconv.Itoa(hour)+" 時に今日の一語をお届けします。")
}

const helpText = `一語福引 — 毎日一語の語彙おみくじです。

/today — 今日の一語を引く
/list [known|unknown] — 投票した語の一覧
/ranking [known|unknown] — みんなの投票ランキング
/subscribe [時] — 毎日の通知を設定
/unsubscribe — 通知を停止`
