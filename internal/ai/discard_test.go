package ai

import (
	"testing"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/scoring"
)

func mustCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return cards
}

func TestChooseDiscardKeepsObviousHand(t *testing.T) {
	// Three fives and a Jack dominate every other keep.
	hand := mustCards(t, "5h5s5dJc2h7d")

	d, err := ChooseDiscard(hand)
	if err != nil {
		t.Fatal(err)
	}

	wantKeep := mustCards(t, "5h5s5dJc")
	if len(d.Keep) != 4 || len(d.Discard) != 2 {
		t.Fatalf("expected 4 kept / 2 discarded, got %d / %d", len(d.Keep), len(d.Discard))
	}
	for i, c := range wantKeep {
		if d.Keep[i] != c {
			t.Fatalf("keep = %v, want %v", d.Keep, wantKeep)
		}
	}
}

func TestChooseDiscardRejectsWrongSize(t *testing.T) {
	if _, err := ChooseDiscard(mustCards(t, "5h5s5dJc")); err == nil {
		t.Error("expected error for 4-card hand")
	}
	if _, err := ChooseDiscard(nil); err == nil {
		t.Error("expected error for empty hand")
	}
}

func TestChooseDiscardIsDeterministic(t *testing.T) {
	hand := mustCards(t, "2c7d9hQsKd4h")

	first, err := ChooseDiscard(hand)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		d, err := ChooseDiscard(hand)
		if err != nil {
			t.Fatal(err)
		}
		if d.Discard[0] != first.Discard[0] || d.Discard[1] != first.Discard[1] {
			t.Fatalf("run %d discarded %v, first run discarded %v", i, d.Discard, first.Discard)
		}
	}
}

// The selector must return the first index pair reaching the maximum
// score, in ascending (i,j) order.
func TestChooseDiscardTieBreaksToFirstPair(t *testing.T) {
	hands := []string{
		"2c7d9hQsKd4h",
		"AhKdQc9s7h2d",
		"5h5s5dJc2h7d",
		"6c7d8h9sTcJd",
	}

	for _, s := range hands {
		hand := mustCards(t, s)
		got, err := ChooseDiscard(hand)
		if err != nil {
			t.Fatal(err)
		}

		// Recompute the first maximum independently.
		bestScore := -1
		var wantDiscard []deck.Card
		for i := 0; i < len(hand); i++ {
			for j := i + 1; j < len(hand); j++ {
				keep := make([]deck.Card, 0, 4)
				for k, c := range hand {
					if k != i && k != j {
						keep = append(keep, c)
					}
				}
				score := scoring.Score(keep, deck.NewCard(deck.Spades, deck.Ace), false)
				if score > bestScore {
					bestScore = score
					wantDiscard = []deck.Card{hand[i], hand[j]}
				}
			}
		}

		if got.Score != bestScore {
			t.Errorf("hand %s: score %d, want %d", s, got.Score, bestScore)
		}
		if got.Discard[0] != wantDiscard[0] || got.Discard[1] != wantDiscard[1] {
			t.Errorf("hand %s: discarded %v, want first-max pair %v", s, got.Discard, wantDiscard)
		}
	}
}
