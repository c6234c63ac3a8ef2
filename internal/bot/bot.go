// Package bot is the Telegram front-end of the quiz: it shows today's word
// with 知ってる/知らない buttons and records votes through the same local
// core the CLI uses.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/wordomikuji/internal/apiclient"
	"github.com/example/wordomikuji/internal/logger"
	"github.com/example/wordomikuji/internal/quiz"
	"github.com/example/wordomikuji/pkg/models"
)

// vocabularyStore resolves callback votes back to corpus entries
type vocabularyStore interface {
	GetByID(ctx context.Context, id string) (*models.VocabularyEntry, error)
}

// subscriberStore manages daily-notification subscriptions
type subscriberStore interface {
	Subscribe(ctx context.Context, chatID int64, hour int) error
	Unsubscribe(ctx context.Context, chatID int64) error
}

// Bot wires the Telegram API to the quiz core
type Bot struct {
	api       *tgbotapi.BotAPI
	log       *logger.Logger
	drawer    *quiz.Drawer
	submitter *quiz.Submitter
	flow      *quiz.VoteFlow
	vocab     vocabularyStore
	subs      subscriberStore
	backend   *apiclient.Client
	language  string
}

// New creates a bot instance for the given token
func New(
	token string,
	log *logger.Logger,
	drawer *quiz.Drawer,
	submitter *quiz.Submitter,
	flow *quiz.VoteFlow,
	vocab vocabularyStore,
	subs subscriberStore,
	backend *apiclient.Client,
	language string,
) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	return &Bot{
		api:       api,
		log:       log,
		drawer:    drawer,
		submitter: submitter,
		flow:      flow,
		vocab:     vocab,
		subs:      subs,
		backend:   backend,
		language:  language,
	}, nil
}

// Start runs the update loop until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	b.log.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
			b.log.Error("callback handling failed", "data", update.CallbackQuery.Data, "error", err)
		}
	case update.Message != nil && update.Message.IsCommand():
		if err := b.handleCommand(ctx, update.Message); err != nil {
			b.log.Error("command handling failed", "command", update.Message.Command(), "error", err)
		}
	}
}

// SendDailyWord delivers today's word card to a chat. The scheduler calls
// this for each due subscriber.
func (b *Bot) SendDailyWord(ctx context.Context, chatID int64) error {
	return b.sendTodayCard(ctx, chatID)
}

func (b *Bot) send(msg tgbotapi.Chattable) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (b *Bot) reply(chatID int64, text string) error {
	return b.send(tgbotapi.NewMessage(chatID, text))
}
