package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/cribbage-cli/internal/deck"
)

// NewDiscardPrompt returns a prompt function suitable for
// game.NewHumanAgent. It reads 1-based card indices from r one per
// line, rejecting non-numeric, out-of-range and already-chosen picks
// with a reprompt rather than an error. The only error it returns is
// input running out.
func NewDiscardPrompt(r io.Reader, w io.Writer) func(hand []deck.Card) ([2]int, error) {
	scanner := bufio.NewScanner(r)
	return func(hand []deck.Card) ([2]int, error) {
		fmt.Fprintf(w, "Your hand: %s\n", IndexedCards(hand))

		var picks [2]int
		chosen := make(map[int]bool)
		for n := 0; n < 2; {
			fmt.Fprintf(w, "Discard %d of 2 (1-%d): ", n+1, len(hand))
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return picks, err
				}
				return picks, io.EOF
			}

			idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || idx < 1 || idx > len(hand) {
				fmt.Fprintf(w, "%s\n", InfoStyle.Render(fmt.Sprintf("Enter a number between 1 and %d", len(hand))))
				continue
			}
			if chosen[idx-1] {
				fmt.Fprintf(w, "%s\n", InfoStyle.Render("Already selected, pick another card"))
				continue
			}

			chosen[idx-1] = true
			picks[n] = idx - 1
			n++
		}
		return picks, nil
	}
}
