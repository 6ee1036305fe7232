// Package ai picks the computer player's crib discard by brute force
// over every 2-card donation from the 6 dealt cards.
package ai

import (
	"fmt"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/scoring"
)

// placeholderStarter stands in for the unknown cut card when scoring
// candidate keeps. Scoring against a fixed card means the search
// maximizes the hand's self-contained value and is blind to flush, run
// or nobs upside from the real starter. Replacing it with an
// expected-value search over the 46 unseen starters would change which
// cards the bot discards.
var placeholderStarter = deck.NewCard(deck.Spades, deck.Ace)

// Discard is the result of a discard selection
type Discard struct {
	Keep    []deck.Card
	Discard []deck.Card
	// Score is the kept hand's score against the placeholder starter,
	// not a prediction of the hand's final count.
	Score int
}

// ChooseDiscard selects which 2 of 6 dealt cards to send to the crib.
// All C(6,2)=15 index pairs are tried in ascending (i,j) order and the
// strictly best-scoring keep wins; ties resolve to the first pair
// tried, so the choice is deterministic for a given hand.
func ChooseDiscard(hand []deck.Card) (Discard, error) {
	if len(hand) != 6 {
		return Discard{}, fmt.Errorf("discard selection needs 6 cards, got %d", len(hand))
	}

	best := Discard{Score: -1}
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			keep := make([]deck.Card, 0, 4)
			for k, c := range hand {
				if k != i && k != j {
					keep = append(keep, c)
				}
			}

			score := scoring.Score(keep, placeholderStarter, false)
			if score > best.Score {
				best = Discard{
					Keep:    keep,
					Discard: []deck.Card{hand[i], hand[j]},
					Score:   score,
				}
			}
		}
	}
	return best, nil
}
