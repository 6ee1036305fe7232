package deck

import (
	"testing"

	"github.com/lox/cribbage-cli/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck(randutil.New(1))

	if d.CardsRemaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Errorf("duplicate card dealt: %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeckIsDeterministicForSeed(t *testing.T) {
	d1 := NewDeck(randutil.New(42))
	d2 := NewDeck(randutil.New(42))

	for i := 0; i < 52; i++ {
		c1, _ := d1.Deal()
		c2, _ := d2.Deal()
		if c1 != c2 {
			t.Fatalf("card %d differs between identically seeded decks: %s vs %s", i, c1, c2)
		}
	}
}

func TestDealN(t *testing.T) {
	d := NewDeck(randutil.New(7))

	hand := d.DealN(6)
	if len(hand) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(hand))
	}
	if d.CardsRemaining() != 46 {
		t.Errorf("expected 46 remaining, got %d", d.CardsRemaining())
	}

	// Dealing more than remain caps at the deck size
	rest := d.DealN(100)
	if len(rest) != 46 {
		t.Errorf("expected 46 cards, got %d", len(rest))
	}
}

func TestReset(t *testing.T) {
	d := NewDeck(randutil.New(9))
	d.DealN(20)

	d.Reset()
	if d.CardsRemaining() != 52 {
		t.Errorf("expected 52 cards after reset, got %d", d.CardsRemaining())
	}
}
