package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/cribbage-cli/internal/display"
	"github.com/lox/cribbage-cli/internal/simulator"
)

type SimulateCmd struct {
	Rounds  int   `default:"10000" help:"Number of rounds to simulate"`
	Seed    int64 `default:"0" help:"RNG seed (0 for random)"`
	Workers int   `help:"Parallel workers (default GOMAXPROCS)"`
	Verbose bool  `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Simulated %d rounds in %s (seed %d)\n\n", stats.Rounds, elapsed.Round(time.Millisecond), seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Pone hand\t%.2f avg\n", stats.MeanPone())
	fmt.Fprintf(w, "Dealer hand\t%.2f avg\n", stats.MeanDealer())
	fmt.Fprintf(w, "Crib\t%.2f avg\n", stats.MeanCrib())
	fmt.Fprintf(w, "His heels\t%d (%.1f%%)\n", stats.Heels, 100*float64(stats.Heels)/float64(stats.Rounds))
	w.Flush()

	fmt.Printf("\nBest hand: %s with starter %s (%d points)\n",
		display.Cards(stats.BestCards), display.Card(stats.BestStarter), stats.BestHand)

	fmt.Println("\nScore distribution:")
	total := 3 * stats.Rounds
	for score, count := range stats.HandScores {
		if count == 0 {
			continue
		}
		fmt.Printf("  %2d  %6.2f%%  %d\n", score, 100*float64(count)/float64(total), count)
	}
	return nil
}
