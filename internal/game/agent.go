package game

import (
	"fmt"

	"github.com/lox/cribbage-cli/internal/ai"
	"github.com/lox/cribbage-cli/internal/deck"
)

// Agent decides which two of six dealt cards a player sends to the crib
type Agent interface {
	// ChooseDiscard returns the kept 4 cards and the discarded 2
	ChooseDiscard(hand []deck.Card) (keep, discard []deck.Card, err error)
}

// BotAgent drives the computer player's discard selection
type BotAgent struct{}

// ChooseDiscard delegates to the brute-force discard search
func (BotAgent) ChooseDiscard(hand []deck.Card) ([]deck.Card, []deck.Card, error) {
	d, err := ai.ChooseDiscard(hand)
	if err != nil {
		return nil, nil, err
	}
	return d.Keep, d.Discard, nil
}

// HumanAgent asks the person at the keyboard through a prompt function.
// The prompt returns two distinct 0-based indices into the hand; input
// validation and reprompting live on the prompt side.
type HumanAgent struct {
	promptFunc func(hand []deck.Card) ([2]int, error)
}

// NewHumanAgent creates a human agent with a prompt function
func NewHumanAgent(promptFunc func(hand []deck.Card) ([2]int, error)) *HumanAgent {
	return &HumanAgent{promptFunc: promptFunc}
}

// ChooseDiscard prompts for two card indices and splits the hand
func (h *HumanAgent) ChooseDiscard(hand []deck.Card) ([]deck.Card, []deck.Card, error) {
	if h.promptFunc == nil {
		return nil, nil, fmt.Errorf("no prompt function configured")
	}

	picks, err := h.promptFunc(hand)
	if err != nil {
		return nil, nil, fmt.Errorf("reading discard selection: %w", err)
	}
	if picks[0] == picks[1] || !validIndex(picks[0], hand) || !validIndex(picks[1], hand) {
		return nil, nil, fmt.Errorf("invalid discard selection %v", picks)
	}

	keep := make([]deck.Card, 0, len(hand)-2)
	discard := make([]deck.Card, 0, 2)
	for i, c := range hand {
		if i == picks[0] || i == picks[1] {
			discard = append(discard, c)
		} else {
			keep = append(keep, c)
		}
	}
	return keep, discard, nil
}

func validIndex(i int, hand []deck.Card) bool {
	return i >= 0 && i < len(hand)
}
