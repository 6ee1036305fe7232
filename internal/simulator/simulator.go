// Package simulator plays batches of bot-vs-bot rounds to profile the
// discard heuristic and the score distribution it produces.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/game"
	"github.com/lox/cribbage-cli/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Seed    int64
	Workers int // defaults to GOMAXPROCS
	Logger  *log.Logger
}

// Simulator runs cribbage round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// roundOutcome captures one finished round for later aggregation
type roundOutcome struct {
	pone        int
	dealer      int
	crib        int
	heels       bool
	best        int
	bestCards   []deck.Card
	bestStarter deck.Card
}

// Statistics aggregates simulation results
type Statistics struct {
	Rounds       int
	PonePoints   int
	DealerPoints int
	CribPoints   int
	Heels        int

	// Best single hand seen across hands and cribs
	BestHand    int
	BestCards   []deck.Card
	BestStarter deck.Card

	// HandScores counts hand totals by score; 29 is the ceiling
	HandScores [30]int
}

// MeanPone returns the average pone hand score
func (s *Statistics) MeanPone() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.PonePoints) / float64(s.Rounds)
}

// MeanDealer returns the average dealer hand score
func (s *Statistics) MeanDealer() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.DealerPoints) / float64(s.Rounds)
}

// MeanCrib returns the average crib score
func (s *Statistics) MeanCrib() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.CribPoints) / float64(s.Rounds)
}

// Run plays the configured number of rounds and aggregates statistics.
// Rounds run in parallel but each gets a seed derived from its index,
// and outcomes are reduced in round order, so results are identical for
// a given base seed regardless of worker count or completion order.
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]roundOutcome, s.config.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range outcomes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome, err := s.playRound(i)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Statistics{}
	for _, o := range outcomes {
		stats.add(o)
	}
	return stats, nil
}

// playRound plays a single bot-vs-bot round with its own seeded RNG.
// The dealer alternates with the round index so neither role dominates
// the aggregate.
func (s *Simulator) playRound(round int) (roundOutcome, error) {
	rng := randutil.New(randutil.RoundSeed(s.config.Seed, round))

	botA := game.NewPlayer("bot-a", game.Bot)
	botB := game.NewPlayer("bot-b", game.Bot)
	if round%2 == 1 {
		botA, botB = botB, botA
	}

	g := game.New(botA, botB, game.BotAgent{}, game.BotAgent{}, rng, s.config.Logger)
	result, err := g.PlayRound()
	if err != nil {
		return roundOutcome{}, err
	}

	o := roundOutcome{
		pone:   result.PoneScore.Total,
		dealer: result.DealerScore.Total,
		crib:   result.CribScore.Total,
		heels:  result.Heels,
	}

	o.best = result.PoneScore.Total
	o.bestCards = result.PoneKept
	o.bestStarter = result.Starter
	if result.DealerScore.Total > o.best {
		o.best = result.DealerScore.Total
		o.bestCards = result.DealerKept
	}
	if result.CribScore.Total > o.best {
		o.best = result.CribScore.Total
		o.bestCards = result.Crib
	}
	return o, nil
}

func (s *Statistics) add(o roundOutcome) {
	s.Rounds++
	s.PonePoints += o.pone
	s.DealerPoints += o.dealer
	s.CribPoints += o.crib
	if o.heels {
		s.Heels++
	}
	if o.best > s.BestHand {
		s.BestHand = o.best
		s.BestCards = o.bestCards
		s.BestStarter = o.bestStarter
	}
	for _, score := range []int{o.pone, o.dealer, o.crib} {
		if score >= 0 && score < len(s.HandScores) {
			s.HandScores[score]++
		}
	}
}
