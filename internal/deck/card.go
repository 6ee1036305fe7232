package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low in cribbage, so the
// numeric value of the enum doubles as the run order (A=1 .. K=13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// PointValue returns the card's counting value for fifteens:
// Ace counts 1, pip cards count face value, and J/Q/K all count 10.
func (c Card) PointValue() int {
	if c.Rank > Ten {
		return 10
	}
	return int(c.Rank)
}

// RunOrder returns the card's position in rank order (A=1 .. K=13),
// used only for detecting runs. Unlike PointValue, face cards stay
// distinct here so J-Q-K forms a run.
func (c Card) RunOrder() int {
	return int(c.Rank)
}

// IsJack returns true if the card is a Jack
func (c Card) IsJack() bool {
	return c.Rank == Jack
}

// ParseCard parses a two-character card code like "As", "5h" or "Td".
// Rank characters are A23456789TJQK and suits are s/h/d/c, case
// insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: expected rank and suit", s)
	}

	var rank Rank
	switch strings.ToUpper(s[:1]) {
	case "A":
		rank = Ace
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[:1])
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1:])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a concatenated card string like "5h5s5dJc".
// Spaces between cards are allowed.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid cards %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
