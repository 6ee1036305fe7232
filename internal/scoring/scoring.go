// Package scoring implements the cribbage show count: fifteens, pairs,
// runs, flush and nobs over a 4-card hand plus the cut starter. All
// functions are pure and total; card order never affects a score.
package scoring

import (
	"sort"

	"github.com/lox/cribbage-cli/internal/deck"
)

// Breakdown itemizes a scored hand. Total is always assigned the sum of
// the five categories, never computed separately, so the itemized and
// aggregate results cannot drift apart.
type Breakdown struct {
	Fifteens int
	Pairs    int
	Runs     int
	Flush    int
	Nobs     int
	Total    int
}

// Score returns the total points for a hand and starter
func Score(hand []deck.Card, starter deck.Card, isCrib bool) int {
	return ScoreBreakdown(hand, starter, isCrib).Total
}

// ScoreBreakdown scores a hand and starter and itemizes the result.
// Fifteens, pairs and runs are counted over the 5-card union of hand and
// starter; flush and nobs treat the starter specially. isCrib selects the
// crib flush rule, where only a 5-card flush counts.
func ScoreBreakdown(hand []deck.Card, starter deck.Card, isCrib bool) Breakdown {
	all := make([]deck.Card, 0, len(hand)+1)
	all = append(all, hand...)
	all = append(all, starter)

	subsets := Subsets(all)

	b := Breakdown{
		Fifteens: scoreFifteens(subsets),
		Pairs:    scorePairs(subsets),
		Runs:     scoreRuns(subsets, len(all)),
		Flush:    scoreFlush(hand, starter, isCrib),
		Nobs:     scoreNobs(hand, starter),
	}
	b.Total = b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs
	return b
}

// scoreFifteens awards 2 points for every subset whose point values sum
// to exactly 15. A card may appear in many counted subsets at once.
func scoreFifteens(subsets [][]deck.Card) int {
	points := 0
	for _, subset := range subsets {
		sum := 0
		for _, c := range subset {
			sum += c.PointValue()
		}
		if sum == 15 {
			points += 2
		}
	}
	return points
}

// scorePairs awards 2 points per two-card subset of equal rank. Suits
// are irrelevant, so four of a kind counts C(4,2)=6 pairs for 12 points.
func scorePairs(subsets [][]deck.Card) int {
	points := 0
	for _, subset := range subsets {
		if len(subset) == 2 && subset[0].Rank == subset[1].Rank {
			points += 2
		}
	}
	return points
}

// scoreRuns scores runs with longest-run-wins exclusivity: sizes are
// checked from n down to 3, and the first size with any run scores
// size*count while every shorter size is skipped. A 5-card straight is
// therefore worth exactly 5, never its 4- and 3-card sub-runs as well.
// Distinct runs of the same maximal length, as in 4-5-5-6-7, each count
// at that length.
func scoreRuns(subsets [][]deck.Card, n int) int {
	counts := make([]int, n+1)
	for _, subset := range subsets {
		if len(subset) >= 3 && isRun(subset) {
			counts[len(subset)]++
		}
	}
	for size := n; size >= 3; size-- {
		if counts[size] > 0 {
			return size * counts[size]
		}
	}
	return 0
}

// isRun reports whether the cards form strictly consecutive run orders
// with no duplicates
func isRun(cards []deck.Card) bool {
	orders := make([]int, len(cards))
	for i, c := range cards {
		orders[i] = c.RunOrder()
	}
	sort.Ints(orders)
	for i := 1; i < len(orders); i++ {
		if orders[i] != orders[i-1]+1 {
			return false
		}
	}
	return true
}

// scoreFlush checks the hand's suits for uniformity. A hand flush with a
// matching starter is 5; without the starter it is 4 in a player's hand
// but nothing in the crib, where only the full 5-card flush counts. The
// starter alone never makes a flush.
func scoreFlush(hand []deck.Card, starter deck.Card, isCrib bool) int {
	if len(hand) == 0 {
		return 0
	}
	suit := hand[0].Suit
	for _, c := range hand[1:] {
		if c.Suit != suit {
			return 0
		}
	}
	if starter.Suit == suit {
		return 5
	}
	if isCrib {
		return 0
	}
	return 4
}

// scoreNobs awards 1 point per Jack in the hand matching the starter's
// suit. A legal deck allows at most one, but the count is not capped.
func scoreNobs(hand []deck.Card, starter deck.Card) int {
	points := 0
	for _, c := range hand {
		if c.IsJack() && c.Suit == starter.Suit {
			points++
		}
	}
	return points
}
