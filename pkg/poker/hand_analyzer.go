package poker

import (
	"fmt"
	"math"
	"sort"

	"fivecarddraw-server/pkg/deck"
)

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	// ranks are sorted ascending
	ranks []deck.Rank

	// the groups below are sorted descending
	quads   []deck.Rank
	trips   []deck.Rank
	pairs   []deck.Rank
	singles []deck.Rank

	straight deck.Rank
	flush    bool

	category Category
	strength int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(cards deck.Hand) *HandAnalyzer {
	if len(cards) != deck.HandSize {
		panic(fmt.Sprintf("expected %d cards, got %d", deck.HandSize, len(cards)))
	}

	h := &HandAnalyzer{
		ranks: cards.Ranks(),
		flush: isSingleSuit(cards.Suits()),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()
	h.strength = h.calculateStrength()

	return h
}

// Classify returns the category of the hand
func Classify(cards deck.Hand) Category {
	return NewHandAnalyzer(cards).GetCategory()
}

func isSingleSuit(suits []deck.Suit) bool {
	for _, s := range suits[1:] {
		if s != suits[0] {
			return false
		}
	}

	return true
}

func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[deck.Rank]int)
	for _, r := range h.ranks {
		counts[r]++
	}

	// walk from the highest rank down so each group comes out sorted
	for i := len(h.ranks) - 1; i >= 0; i-- {
		r := h.ranks[i]
		if i+1 < len(h.ranks) && h.ranks[i+1] == r {
			continue
		}

		switch counts[r] {
		case 4:
			h.quads = append(h.quads, r)
		case 3:
			h.trips = append(h.trips, r)
		case 2:
			h.pairs = append(h.pairs, r)
		default:
			h.singles = append(h.singles, r)
		}
	}

	if high, ok := straightHigh(h.ranks); ok {
		h.straight = high
	}
}

// calculateCategory picks the first matching category from the strongest down
func (h *HandAnalyzer) calculateCategory() {
	if h.GetRoyalFlush() {
		h.category = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.category = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.category = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.category = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.category = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.category = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.category = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.category = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.category = OnePair
	} else {
		h.category = HighCard
	}
}

// GetCategory returns the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// IsStraight returns true if the ranks form a run, regardless of suit
func (h *HandAnalyzer) IsStraight() bool {
	return h.straight > 0
}

// IsFlush returns true if all cards share a suit, regardless of rank
func (h *HandAnalyzer) IsFlush() bool {
	return h.flush
}

// GetRoyalFlush will return true if the hand is a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.flush && h.straight == deck.Ace && h.ranks[0] == deck.Ten
}

// GetStraightFlush will return the top card of a straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Rank, bool) {
	if h.flush && h.straight > 0 && !h.GetRoyalFlush() {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Rank, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the three of a kind and pair ranks, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	if len(h.trips) == 1 && len(h.pairs) == 1 {
		return []deck.Rank{h.trips[0], h.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the ranks (high to low) of a flush that is not a run
func (h *HandAnalyzer) GetFlush() ([]deck.Rank, bool) {
	if h.flush && h.straight == 0 {
		return h.GetHighCard(), true
	}

	return nil, false
}

// GetStraight will return the top card of a straight that is not suited
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	if !h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if the hand
// is not a full house
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Rank, bool) {
	if len(h.trips) == 1 && len(h.pairs) == 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the higher and lower pair, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	if len(h.pairs) == 2 {
		return []deck.Rank{h.pairs[0], h.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the rank of the only pair in the hand
func (h *HandAnalyzer) GetPair() (deck.Rank, bool) {
	if len(h.pairs) == 1 && len(h.trips) == 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetKickers returns the unmatched ranks, high to low
func (h *HandAnalyzer) GetKickers() []deck.Rank {
	kickers := make([]deck.Rank, len(h.singles))
	copy(kickers, h.singles)
	return kickers
}

// GetHighCard returns every rank, high to low
func (h *HandAnalyzer) GetHighCard() []deck.Rank {
	ranks := make([]deck.Rank, len(h.ranks))
	copy(ranks, h.ranks)
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i] > ranks[j]
	})

	return ranks
}

// GetStrength returns a number that orders hands: a higher strength beats a
// lower one and equal strengths split the pot
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

func (h *HandAnalyzer) calculateStrength() int {
	switch h.category {
	case RoyalFlush:
		return calculateStrength(h.category, nil)
	case StraightFlush, Straight:
		return calculateStrength(h.category, []deck.Rank{h.straight})
	case FourOfAKind:
		return calculateStrength(h.category, append([]deck.Rank{h.quads[0]}, h.singles...))
	case FullHouse:
		return calculateStrength(h.category, []deck.Rank{h.trips[0], h.pairs[0]})
	case ThreeOfAKind:
		return calculateStrength(h.category, append([]deck.Rank{h.trips[0]}, h.singles...))
	case TwoPair:
		return calculateStrength(h.category, append([]deck.Rank{h.pairs[0], h.pairs[1]}, h.singles...))
	case OnePair:
		return calculateStrength(h.category, append([]deck.Rank{h.pairs[0]}, h.singles...))
	case Flush, HighCard:
		return calculateStrength(h.category, h.GetHighCard())
	}

	panic("unknown category")
}

// calculateStrength encodes the category and up to five ranks, most
// significant first, as digits of a base-15 number
func calculateStrength(category Category, ranks []deck.Rank) int {
	fiveRanks := make([]deck.Rank, 5)
	copy(fiveRanks, ranks)

	strength := math.Pow(15, 5) * float64(category)
	for i := 0; i < 5; i++ {
		val := fiveRanks[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}
