package poker

import (
	"testing"

	"fivecarddraw-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func contenders(hands ...string) []Contender {
	c := make([]Contender, len(hands))
	for i, h := range hands {
		c[i] = Contender{ID: i + 1, Hand: deck.Hand(deck.CardsFromString(h))}
	}

	return c
}

func reversed(c []Contender) []Contender {
	r := make([]Contender, len(c))
	for i := range c {
		r[len(c)-1-i] = c[i]
	}

	return r
}

func TestEvaluateHands(t *testing.T) {
	tests := []struct {
		name     string
		hands    []string
		expected []int
	}{
		{
			name:     "royal flushes split",
			hands:    []string{"10-C,J-C,Q-C,K-C,A-C", "10-H,J-H,Q-H,K-H,A-H"},
			expected: []int{1, 2},
		},
		{
			name:     "higher quads win",
			hands:    []string{"10-C,10-D,10-H,10-S,A-C", "J-C,J-D,J-H,J-S,9-C"},
			expected: []int{2},
		},
		{
			name:     "higher category wins",
			hands:    []string{"2-H,7-H,9-H,J-H,K-H", "3-C,3-D,3-H,4-S,4-C"},
			expected: []int{2},
		},
		{
			name:     "pair beats high card",
			hands:    []string{"A-C,K-D,Q-H,J-S,9-C", "2-C,2-D,3-H,4-S,5-D"},
			expected: []int{2},
		},
		{
			name:     "higher straight flush wins",
			hands:    []string{"A-D,2-D,3-D,4-D,5-D", "2-S,3-S,4-S,5-S,6-S"},
			expected: []int{2},
		},
		{
			name:     "nine high straight beats the wheel",
			hands:    []string{"5-C,6-D,7-H,8-S,9-C", "A-C,2-D,3-H,4-S,5-S"},
			expected: []int{1},
		},
		{
			name:     "equal straights split",
			hands:    []string{"5-C,6-D,7-H,8-S,9-C", "5-D,6-H,7-S,8-C,9-D", "2-C,3-D,4-H,5-H,6-C"},
			expected: []int{1, 2},
		},
		{
			name:     "flush decided on the last card",
			hands:    []string{"K-H,J-H,9-H,7-H,2-H", "K-S,J-S,9-S,7-S,3-S"},
			expected: []int{2},
		},
		{
			name:     "identical flushes split, lower flush loses",
			hands:    []string{"K-H,J-H,9-H,7-H,2-H", "K-D,J-D,9-D,7-D,2-D", "Q-S,J-S,9-S,7-S,2-S"},
			expected: []int{1, 2},
		},
		{
			name:     "full house compares the three of a kind first",
			hands:    []string{"K-C,K-D,K-H,2-S,2-C", "Q-C,Q-D,Q-H,A-S,A-C"},
			expected: []int{1},
		},
		{
			name:     "higher three of a kind wins",
			hands:    []string{"7-C,7-D,7-H,K-S,2-C", "8-C,8-D,8-H,3-S,2-D"},
			expected: []int{2},
		},
		{
			name:     "two pair compares the higher pair",
			hands:    []string{"Q-C,Q-D,2-H,2-S,3-C", "J-C,J-D,10-H,10-S,A-C"},
			expected: []int{1},
		},
		{
			name:     "two pair compares the lower pair",
			hands:    []string{"J-C,J-D,4-H,4-S,A-C", "J-H,J-S,5-C,5-D,2-C"},
			expected: []int{2},
		},
		{
			name:     "two pair compares the kicker",
			hands:    []string{"J-C,J-D,4-H,4-S,A-C", "J-H,J-S,4-C,4-D,K-C"},
			expected: []int{1},
		},
		{
			name:     "identical two pair split",
			hands:    []string{"J-C,J-D,4-H,4-S,A-C", "J-H,J-S,4-C,4-D,A-D"},
			expected: []int{1, 2},
		},
		{
			name:     "pair compares the pair first",
			hands:    []string{"9-C,9-D,2-H,5-S,K-C", "10-C,10-D,2-C,3-S,4-C"},
			expected: []int{2},
		},
		{
			name:     "pair compares the kickers",
			hands:    []string{"9-C,9-D,2-H,5-S,K-C", "9-H,9-S,3-H,5-C,K-D"},
			expected: []int{2},
		},
		{
			name:     "high card compares every card",
			hands:    []string{"2-C,5-D,9-H,J-S,K-C", "3-C,5-H,9-D,J-C,K-D", "2-D,4-D,9-S,J-D,K-H"},
			expected: []int{2},
		},
		{
			name:     "identical high cards split",
			hands:    []string{"2-C,5-D,9-H,J-S,K-C", "2-D,5-H,9-S,J-C,K-D"},
			expected: []int{1, 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := contenders(test.hands...)
			assert.Equal(t, test.expected, EvaluateHands(c))
			assert.Equal(t, test.expected, EvaluateHands(reversed(c)), "order must not matter")
		})
	}
}

func TestEvaluateHands_Empty(t *testing.T) {
	assert.Nil(t, EvaluateHands(nil))
}

func TestAnalyze(t *testing.T) {
	results := Analyze(contenders("10-C,10-D,10-H,10-S,A-C", "J-C,J-D,J-H,J-S,9-C"))
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, FourOfAKind, results[0].Category)
	assert.Equal(t, FourOfAKind, results[1].Category)
	assert.Less(t, results[0].Strength, results[1].Strength)
}
