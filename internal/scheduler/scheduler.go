package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/wordomikuji/internal/logger"
	"github.com/example/wordomikuji/pkg/models"
)

// Notifier sends today's word to a chat
type Notifier interface {
	SendDailyWord(ctx context.Context, chatID int64) error
}

// SubscriberStore lists the chats due for a notification
type SubscriberStore interface {
	GetDueForHour(ctx context.Context, hour int) ([]models.Subscriber, error)
}

// Scheduler delivers the daily word to subscribed chats. It ticks hourly and
// notifies the subscribers whose preferred hour matches.
type Scheduler struct {
	scheduler *gocron.Scheduler
	subs      SubscriberStore
	notifier  Notifier
	log       *logger.Logger
	now       func() time.Time
}

// New creates a scheduler instance
func New(subs SubscriberStore, notifier Notifier, log *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		subs:      subs,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Start begins running the hourly notification check in the background
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.notifyDue)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// notifyDue sends today's word to every subscriber whose hour matches now.
// One failing chat never blocks the rest.
func (s *Scheduler) notifyDue() {
	ctx := context.Background()
	hour := s.now().Hour()

	subs, err := s.subs.GetDueForHour(ctx, hour)
	if err != nil {
		s.log.Error("failed to get due subscribers", "hour", hour, "error", err)
		return
	}

	for _, sub := range subs {
		if err := s.notifier.SendDailyWord(ctx, sub.ChatID); err != nil {
			s.log.Error("failed to send daily word", "chatId", sub.ChatID, "error", err)
		}
	}
}
