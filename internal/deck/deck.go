package deck

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck. The random source is
// injected so games and simulations can be replayed from a seed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new shuffled 52-card deck using the given RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.Shuffle()
	return d
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}

	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Deal()
	}
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
}
