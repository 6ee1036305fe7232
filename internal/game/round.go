package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/scoring"
)

// Game orchestrates rounds between two players. It owns dealer
// alternation and the deal/discard/cut/show sequence; all scoring is
// delegated to the scoring package.
type Game struct {
	players [2]*Player
	agents  [2]Agent
	dealer  int
	rng     *rand.Rand
	logger  *log.Logger
}

// New creates a game. Player 0 deals the first round. The RNG is
// injected so whole games can be replayed from a seed.
func New(p0, p1 *Player, a0, a1 Agent, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		players: [2]*Player{p0, p1},
		agents:  [2]Agent{a0, a1},
		rng:     rng,
		logger:  logger,
	}
}

// Dealer returns the player dealing the next round
func (g *Game) Dealer() *Player {
	return g.players[g.dealer]
}

// Pone returns the non-dealer for the next round
func (g *Game) Pone() *Player {
	return g.players[1-g.dealer]
}

// RoundResult is a snapshot of one completed round: the three scored
// hands, the starter and the heels bonus. The game keeps no running
// totals; each round stands alone.
type RoundResult struct {
	Dealer  *Player
	Pone    *Player
	Starter deck.Card
	// Heels is true when the cut starter is a Jack, worth 2 to the
	// dealer. This is a bare rank check on the starter, separate from
	// hand scoring.
	Heels bool

	DealerKept []deck.Card
	PoneKept   []deck.Card
	Crib       []deck.Card

	PoneScore   scoring.Breakdown
	DealerScore scoring.Breakdown
	CribScore   scoring.Breakdown
}

// PlayRound deals 6 cards to each player, collects 2 discards apiece
// into the crib, cuts the starter and scores pone hand, dealer hand and
// crib in that order. The dealer alternates after every round.
func (g *Game) PlayRound() (*RoundResult, error) {
	dealerIdx := g.dealer
	poneIdx := 1 - g.dealer
	defer func() { g.dealer = poneIdx }()

	d := deck.NewDeck(g.rng)

	// Non-dealer receives first
	g.players[poneIdx].Hand = d.DealN(6)
	g.players[dealerIdx].Hand = d.DealN(6)

	g.logger.Info("dealt hands",
		"dealer", g.players[dealerIdx].Name,
		"pone", g.players[poneIdx].Name)

	crib := make([]deck.Card, 0, 4)
	for _, idx := range []int{poneIdx, dealerIdx} {
		p := g.players[idx]
		keep, discard, err := g.agents[idx].ChooseDiscard(p.Hand)
		if err != nil {
			return nil, fmt.Errorf("%s choosing discard: %w", p.Name, err)
		}
		p.Hand = keep
		crib = append(crib, discard...)
		g.logger.Info("discarded to crib", "player", p.Name, "kept", fmt.Sprint(keep))
	}

	starter, ok := d.Deal()
	if !ok {
		return nil, fmt.Errorf("deck exhausted cutting starter")
	}

	result := &RoundResult{
		Dealer:     g.players[dealerIdx],
		Pone:       g.players[poneIdx],
		Starter:    starter,
		Heels:      starter.IsJack(),
		DealerKept: g.players[dealerIdx].Hand,
		PoneKept:   g.players[poneIdx].Hand,
		Crib:       crib,
	}

	// The show counts pone first, then dealer, then crib.
	result.PoneScore = scoring.ScoreBreakdown(result.PoneKept, starter, false)
	result.DealerScore = scoring.ScoreBreakdown(result.DealerKept, starter, false)
	result.CribScore = scoring.ScoreBreakdown(result.Crib, starter, true)

	g.logger.Info("round scored",
		"starter", starter.String(),
		"heels", result.Heels,
		"pone", result.PoneScore.Total,
		"dealer", result.DealerScore.Total,
		"crib", result.CribScore.Total)

	return result, nil
}
