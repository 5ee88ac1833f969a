package deck

import (
	"sort"
	"strings"
)

// HandSize is the number of cards a participant holds
const HandSize = 5

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Discard will discard the specified card and report whether it was found
func (h *Hand) Discard(card Card) bool {
	for i, c := range *h {
		if c == card {
			*h = append((*h)[:i:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// Ranks returns the ranks of the hand sorted ascending
func (h Hand) Ranks() []Rank {
	ranks := make([]Rank, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i] < ranks[j]
	})

	return ranks
}

// Suits returns the suit of every card in hand order
func (h Hand) Suits() []Suit {
	suits := make([]Suit, len(h))
	for i, c := range h {
		suits[i] = c.Suit
	}

	return suits
}

// String returns the hand in the format of [2-S, 10-H, ...]
func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return "[" + strings.Join(c, ", ") + "]"
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
