package main

import (
	"fmt"

	"github.com/lox/cribbage-cli/internal/ai"
	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/display"
)

type DiscardCmd struct {
	Hand string `arg:"" help:"Six dealt cards, e.g. '5h5s5dJc2h7d'"`
}

func (c *DiscardCmd) Run() error {
	hand, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if err := validateNoDuplicates(hand); err != nil {
		return err
	}

	d, err := ai.ChooseDiscard(hand)
	if err != nil {
		return err
	}

	fmt.Printf("Keep:    %s\n", display.Cards(d.Keep))
	fmt.Printf("Discard: %s\n", display.Cards(d.Discard))
	fmt.Printf("Heuristic score: %d\n", d.Score)
	return nil
}
