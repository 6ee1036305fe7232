package main

import (
	"fmt"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/display"
	"github.com/lox/cribbage-cli/internal/scoring"
)

type ScoreCmd struct {
	Hand    string `arg:"" help:"Four cards, e.g. '5h5s5dJc'"`
	Starter string `arg:"" help:"Starter card, e.g. '5c'"`
	Crib    bool   `help:"Score as the crib (flush needs all 5 cards)"`
}

func (c *ScoreCmd) Run() error {
	hand, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if len(hand) != 4 {
		return fmt.Errorf("hand must contain exactly 4 cards, got %d", len(hand))
	}

	starter, err := deck.ParseCard(c.Starter)
	if err != nil {
		return fmt.Errorf("parsing starter: %w", err)
	}

	if err := validateNoDuplicates(append([]deck.Card{starter}, hand...)); err != nil {
		return err
	}

	label := "Hand"
	if c.Crib {
		label = "Crib"
	}

	b := scoring.ScoreBreakdown(hand, starter, c.Crib)
	fmt.Printf("Starter: %s\n", display.Card(starter))
	fmt.Print(display.Breakdown(label, hand, b))
	return nil
}

func validateNoDuplicates(cards []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, card := range cards {
		if seen[card] {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen[card] = true
	}
	return nil
}
