package poker

import "fivecarddraw-server/pkg/deck"

// wheel is the five-high straight, A-2-3-4-5, as sorted ascending
var wheel = []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}

// straightHigh returns the top card of the run if the ascending ranks are
// consecutive. The wheel counts as a run topped by the five. Other runs that
// would need the Ace to wrap around (Q-K-A-2-3) are not straights.
func straightHigh(ranks []deck.Rank) (deck.Rank, bool) {
	if len(ranks) == 0 {
		return 0, false
	}

	if isWheel(ranks) {
		return deck.Five, true
	}

	for i := 0; i+1 < len(ranks); i++ {
		if ranks[i] == deck.Ace || ranks[i+1] != ranks[i].Next() {
			return 0, false
		}
	}

	return ranks[len(ranks)-1], true
}

func isWheel(ranks []deck.Rank) bool {
	if len(ranks) != len(wheel) {
		return false
	}

	for i, r := range wheel {
		if ranks[i] != r {
			return false
		}
	}

	return true
}
