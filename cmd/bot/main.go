package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/wordomikuji/internal/apiclient"
	"github.com/example/wordomikuji/internal/bot"
	"github.com/example/wordomikuji/internal/config"
	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/internal/logger"
	"github.com/example/wordomikuji/internal/quiz"
	"github.com/example/wordomikuji/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if err := database.Connect(cfg.ClientDatabase()); err != nil {
		logg.Fatal("failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := database.EnsureClientSchema(); err != nil {
		logg.Fatal("failed to initialize schema", "error", err)
	}

	vocab := database.NewVocabularyRepository()
	draws := database.NewDailyDrawRepository()
	seen := database.NewSeenWordRepository()
	knowledge := database.NewKnowledgeRepository()
	subs := database.NewSubscriberRepository()

	backend := apiclient.New(cfg.Client.APIBaseURL)
	drawer := quiz.NewDrawer(vocab, draws, seen)
	submitter := quiz.NewSubmitter(knowledge, seen)
	flow := quiz.NewVoteFlow(submitter, backend)

	b, err := bot.New(cfg.Bot.Token, logg, drawer, submitter, flow, vocab, subs, backend, cfg.Client.Language)
	if err != nil {
		logg.Fatal("failed to create bot", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Bot.SchedulerEnabled {
		sched := scheduler.New(subs, b, logg)
		sched.Start()
		defer sched.Stop()
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		logg.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	if err := b.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Fatal("bot failed", "error", err)
	}
	logg.Info("bot stopped")
}
