package poker

import (
	"sort"

	"fivecarddraw-server/pkg/deck"
)

// Contender is a hand taking part in a showdown
type Contender struct {
	ID   int
	Hand deck.Hand
}

// Result is the analyzed hand of a contender
type Result struct {
	ID       int
	Category Category
	Strength int
}

// Analyze returns the result for every contender, in input order
func Analyze(contenders []Contender) []Result {
	results := make([]Result, len(contenders))
	for i, c := range contenders {
		h := NewHandAnalyzer(c.Hand)
		results[i] = Result{
			ID:       c.ID,
			Category: h.GetCategory(),
			Strength: h.GetStrength(),
		}
	}

	return results
}

// EvaluateHands returns the IDs of the winning contenders sorted ascending.
// More than one ID means the pot is split.
//
// The best category wins outright. Among contenders sharing the best
// category, ties are broken by the ranks that matter for that category,
// most significant first (quads before kicker, higher pair before lower
// pair, and so on). Royal flushes always split.
func EvaluateHands(contenders []Contender) []int {
	if len(contenders) == 0 {
		return nil
	}

	results := Analyze(contenders)

	best := results[0].Strength
	for _, r := range results[1:] {
		if r.Strength > best {
			best = r.Strength
		}
	}

	winners := make([]int, 0, 1)
	for _, r := range results {
		if r.Strength == best {
			winners = append(winners, r.ID)
		}
	}

	sort.Ints(winners)
	return winners
}
