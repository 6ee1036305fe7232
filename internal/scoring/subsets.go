package scoring

import (
	"math/bits"

	"github.com/lox/cribbage-cli/internal/deck"
)

// Subsets returns every non-empty subset of cards. Masks run 1..2^n-1 so
// the enumeration is deterministic for a given input order; no subset is
// omitted or duplicated. Callers only size-filter or sum over the result,
// so the order itself carries no meaning.
func Subsets(cards []deck.Card) [][]deck.Card {
	n := len(cards)
	out := make([][]deck.Card, 0, (1<<n)-1)
	for mask := 1; mask < (1 << n); mask++ {
		subset := make([]deck.Card, 0, bits.OnesCount(uint(mask)))
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, cards[i])
			}
		}
		out = append(out, subset)
	}
	return out
}
