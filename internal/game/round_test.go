package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/randutil"
)

func newBotGame(seed int64) *Game {
	a := NewPlayer("a", Bot)
	b := NewPlayer("b", Bot)
	return New(a, b, BotAgent{}, BotAgent{}, randutil.New(seed), nil)
}

func TestPlayRoundStructure(t *testing.T) {
	t.Parallel()

	g := newBotGame(1)
	result, err := g.PlayRound()
	require.NoError(t, err)

	require.Len(t, result.PoneKept, 4)
	require.Len(t, result.DealerKept, 4)
	require.Len(t, result.Crib, 4)

	// 13 cards in play, all distinct
	seen := make(map[deck.Card]bool)
	all := append([]deck.Card{result.Starter}, result.PoneKept...)
	all = append(all, result.DealerKept...)
	all = append(all, result.Crib...)
	for _, c := range all {
		require.False(t, seen[c], "card %s appears twice", c)
		seen[c] = true
	}

	require.Equal(t, result.Heels, result.Starter.Rank == deck.Jack)

	for _, b := range []int{
		result.PoneScore.Total,
		result.DealerScore.Total,
		result.CribScore.Total,
	} {
		require.GreaterOrEqual(t, b, 0)
		require.LessOrEqual(t, b, 29)
	}
}

func TestPlayRoundIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	r1, err := newBotGame(99).PlayRound()
	require.NoError(t, err)
	r2, err := newBotGame(99).PlayRound()
	require.NoError(t, err)

	require.Equal(t, r1.Starter, r2.Starter)
	require.Equal(t, r1.PoneKept, r2.PoneKept)
	require.Equal(t, r1.DealerKept, r2.DealerKept)
	require.Equal(t, r1.Crib, r2.Crib)
	require.Equal(t, r1.PoneScore, r2.PoneScore)
	require.Equal(t, r1.DealerScore, r2.DealerScore)
	require.Equal(t, r1.CribScore, r2.CribScore)
}

func TestDealerAlternates(t *testing.T) {
	t.Parallel()

	g := newBotGame(5)
	first := g.Dealer()

	_, err := g.PlayRound()
	require.NoError(t, err)
	require.NotSame(t, first, g.Dealer())

	_, err = g.PlayRound()
	require.NoError(t, err)
	require.Same(t, first, g.Dealer())
}

func TestHumanAgentSplitsHand(t *testing.T) {
	t.Parallel()

	hand := []deck.Card{
		{Suit: deck.Clubs, Rank: deck.Two},
		{Suit: deck.Diamonds, Rank: deck.Five},
		{Suit: deck.Hearts, Rank: deck.Nine},
		{Suit: deck.Spades, Rank: deck.Jack},
		{Suit: deck.Clubs, Rank: deck.King},
		{Suit: deck.Hearts, Rank: deck.Ace},
	}

	agent := NewHumanAgent(func([]deck.Card) ([2]int, error) {
		return [2]int{1, 4}, nil
	})

	keep, discard, err := agent.ChooseDiscard(hand)
	require.NoError(t, err)
	require.Equal(t, []deck.Card{hand[0], hand[2], hand[3], hand[5]}, keep)
	require.Equal(t, []deck.Card{hand[1], hand[4]}, discard)
}

func TestHumanAgentRejectsBadPicks(t *testing.T) {
	t.Parallel()

	hand := make([]deck.Card, 6)
	for i := range hand {
		hand[i] = deck.Card{Suit: deck.Clubs, Rank: deck.Rank(i + 1)}
	}

	agent := NewHumanAgent(func([]deck.Card) ([2]int, error) {
		return [2]int{2, 2}, nil
	})
	_, _, err := agent.ChooseDiscard(hand)
	require.Error(t, err)

	agent = NewHumanAgent(func([]deck.Card) ([2]int, error) {
		return [2]int{0, 9}, nil
	})
	_, _, err = agent.ChooseDiscard(hand)
	require.Error(t, err)

	agent = NewHumanAgent(nil)
	_, _, err = agent.ChooseDiscard(hand)
	require.Error(t, err)
}
