// Command omikuji is the terminal client of the daily word quiz: draw today's
// word, vote on it, and browse your history and the community rankings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/example/wordomikuji/internal/apiclient"
	"github.com/example/wordomikuji/internal/config"
	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/internal/quiz"
	"github.com/example/wordomikuji/pkg/models"
)

const usage = `Usage: omikuji [options] <command>

Commands:
  today                      Draw (or show) today's word
  know                       Vote "I know" on today's word
  dont-know                  Vote "I don't know" on today's word
  list [known|unknown]       Show your votes
  stats                      Show the community tally for today's word
  ranking [known|unknown]    Show the community ranking

Options:
  -limit N                   Number of ranking entries (default 20)
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	limit := flag.Int("limit", 20, "number of ranking entries")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Connect(cfg.ClientDatabase()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureClientSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	app := &cli{
		drawer: quiz.NewDrawer(
			database.NewVocabularyRepository(),
			database.NewDailyDrawRepository(),
			database.NewSeenWordRepository(),
		),
		submitter: quiz.NewSubmitter(
			database.NewKnowledgeRepository(),
			database.NewSeenWordRepository(),
		),
		backend:  apiclient.New(cfg.Client.APIBaseURL),
		language: cfg.Client.Language,
	}
	app.flow = quiz.NewVoteFlow(app.submitter, app.backend)

	ctx := context.Background()
	if err := app.run(ctx, flag.Arg(0), flag.Arg(1), *limit); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

type cli struct {
	drawer    *quiz.Drawer
	submitter *quiz.Submitter
	flow      *quiz.VoteFlow
	backend   *apiclient.Client
	language  string
}

func (c *cli) run(ctx context.Context, command, arg string, limit int) error {
	switch command {
	case "today":
		return c.today(ctx)
	case "know":
		return c.vote(ctx, true)
	case "dont-know":
		return c.vote(ctx, false)
	case "list":
		return c.list(ctx, arg)
	case "stats":
		return c.stats(ctx)
	case "ranking":
		return c.ranking(ctx, arg, limit)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// today draws today's word, or re-shows it when it was already drawn
func (c *cli) today(ctx context.Context) error {
	entry, err := c.drawer.Draw(ctx, c.language)
	if errors.Is(err, quiz.ErrNoEligibleWord) {
		fmt.Println("You have voted on every word in the corpus. Nothing left to draw!")
		return nil
	}
	if err != nil {
		return err
	}

	printEntry(entry)

	voted, err := c.submitter.HasVoted(ctx, entry.ID)
	if err != nil {
		return err
	}
	if voted {
		fmt.Println("\nYou already voted on this word. Run `omikuji stats` for the tally.")
	} else {
		fmt.Println("\nVote with `omikuji know` or `omikuji dont-know`.")
	}
	return nil
}

// vote records the vote on today's word and prints the community tally
func (c *cli) vote(ctx context.Context, knows bool) error {
	entry, err := c.drawer.Draw(ctx, c.language)
	if errors.Is(err, quiz.ErrNoEligibleWord) {
		fmt.Println("Nothing to vote on: every word has been drawn already.")
		return nil
	}
	if err != nil {
		return err
	}

	result, err := c.flow.Vote(ctx, entry, knows)
	if errors.Is(err, quiz.ErrAlreadyVoted) {
		fmt.Printf("You already voted on %s today.\n", entry.Word)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Recorded your vote on %s.\n", entry.Word)
	switch {
	case result.SyncErr != nil:
		fmt.Println("Could not reach the community server; your vote is saved locally.")
	case result.Stats != nil:
		printStats(result.Stats)
	default:
		fmt.Println("Community stats are unavailable right now.")
	}
	return nil
}

// list prints the vote history, optionally filtered to one side
func (c *cli) list(ctx context.Context, arg string) error {
	var knows *bool
	switch arg {
	case "known":
		v := true
		knows = &v
	case "unknown":
		v := false
		knows = &v
	case "":
	default:
		return fmt.Errorf("list filter must be 'known' or 'unknown', got %q", arg)
	}

	entries, err := c.submitter.MyList(ctx, knows)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No votes yet. Run `omikuji today` to draw your first word.")
		return nil
	}

	for _, k := range entries {
		mark := "know"
		if !k.Knows {
			mark = "don't know"
		}
		fmt.Printf("%s  %-12s %s", k.VotedAt.Format(models.DateLayout), mark, k.Word)
		if k.Reading != "" {
			fmt.Printf(" (%s)", k.Reading)
		}
		fmt.Printf(" — %s\n", k.Definition)
	}
	return nil
}

// stats fetches and prints the community tally for today's word
func (c *cli) stats(ctx context.Context) error {
	entry, err := c.drawer.Draw(ctx, c.language)
	if errors.Is(err, quiz.ErrNoEligibleWord) {
		fmt.Println("No word today: every word has been drawn already.")
		return nil
	}
	if err != nil {
		return err
	}

	stats, err := c.backend.WordStats(ctx, entry.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", entry.Word)
	printStats(stats)
	return nil
}

// ranking prints a community ranking; kind defaults to "unknown"
func (c *cli) ranking(ctx context.Context, kind string, limit int) error {
	var entries []models.RankingEntry
	var err error
	switch kind {
	case "known":
		entries, err = c.backend.KnownRanking(ctx, limit)
	case "", "unknown":
		kind = "unknown"
		entries, err = c.backend.UnknownRanking(ctx, limit)
	default:
		return fmt.Errorf("ranking kind must be 'known' or 'unknown', got %q", kind)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No ranking yet: not enough votes have been collected.")
		return nil
	}

	fmt.Printf("Most %s words:\n", kind)
	for i, e := range entries {
		fmt.Printf("%2d. %s", i+1, e.Word)
		if e.Reading != "" {
			fmt.Printf(" (%s)", e.Reading)
		}
		fmt.Printf("  %.0f%% of %d votes\n", e.Rate*100, e.KnowCount+e.UnknownCount)
	}
	return nil
}

func printEntry(entry *models.VocabularyEntry) {
	fmt.Printf("Today's word: %s", entry.Word)
	if entry.Reading != "" {
		fmt.Printf(" (%s)", entry.Reading)
	}
	fmt.Println()
	fmt.Printf("[%s] %s\n", entry.PartOfSpeech, entry.Definition)
	fmt.Printf("Difficulty: %s\n", strings.Repeat("*", entry.DifficultyLevel))
}

func printStats(stats *models.WordStats) {
	if stats.Total() == 0 {
		fmt.Println("Nobody has voted on this word yet.")
		return
	}
	fmt.Printf("Community: %d know / %d don't know (%.0f%% know it)\n",
		stats.KnowCount, stats.UnknownCount, stats.KnowRate()*100)
}
