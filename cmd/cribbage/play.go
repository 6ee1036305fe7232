package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/cribbage-cli/internal/config"
	"github.com/lox/cribbage-cli/internal/display"
	"github.com/lox/cribbage-cli/internal/game"
	"github.com/lox/cribbage-cli/internal/randutil"
)

type PlayCmd struct {
	Config string `default:"cribbage.hcl" help:"Path to HCL config file"`
	Rounds int    `help:"Number of rounds to play (overrides config)"`
	Seed   int64  `help:"RNG seed (overrides config, 0 for random)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.LoadGameConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Rounds > 0 {
		cfg.Rounds = c.Rounds
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close debug log", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "GAME",
	})
	logger.Info("Starting game", "seed", seed, "rounds", cfg.Rounds)

	fmt.Print(display.HeaderStyle.Render(" ♠ ♥ Cribbage ♦ ♣ "))
	fmt.Println()

	human := game.NewPlayer(cfg.PlayerName, game.Human)
	bot := game.NewPlayer(cfg.BotName, game.Bot)
	humanAgent := game.NewHumanAgent(display.NewDiscardPrompt(os.Stdin, os.Stdout))

	g := game.New(human, bot, humanAgent, game.BotAgent{}, randutil.New(seed), logger)

	for round := 1; round <= cfg.Rounds; round++ {
		fmt.Printf("\nRound %d — %s deals\n\n", round, g.Dealer().Name)

		result, err := g.PlayRound()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fmt.Printf("\nStarter: %s\n", display.Card(result.Starter))
		if result.Heels {
			fmt.Printf("His heels! 2 points to %s\n", result.Dealer.Name)
		}
		fmt.Println()
		fmt.Print(display.Breakdown(result.Pone.Name, result.PoneKept, result.PoneScore))
		fmt.Print(display.Breakdown(result.Dealer.Name, result.DealerKept, result.DealerScore))
		fmt.Print(display.Breakdown(fmt.Sprintf("Crib (%s)", result.Dealer.Name), result.Crib, result.CribScore))
	}
	return nil
}
