package game

import (
	"github.com/lox/cribbage-cli/internal/deck"
)

// PlayerKind identifies who controls a player
type PlayerKind int

const (
	Human PlayerKind = iota
	Bot
)

// String returns the string representation of a player kind
func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "Human"
	case Bot:
		return "Bot"
	default:
		return "Unknown"
	}
}

// Player represents one side of the table
type Player struct {
	Name string
	Kind PlayerKind
	Hand []deck.Card
}

// NewPlayer creates a new player
func NewPlayer(name string, kind PlayerKind) *Player {
	return &Player{Name: name, Kind: kind}
}
