package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the face value of a card
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Next returns the following rank. Ace wraps around to Two.
func (r Rank) Next() Rank {
	if r == Ace {
		return Two
	}

	return r + 1
}

// IsValid returns true if the rank is between Two and Ace
func (r Rank) IsValid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(int(r))
}

// RankFromString returns the rank for tokens 2..10, J, Q, K, A
func RankFromString(s string) (Rank, bool) {
	switch s {
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	}

	// reject things like "+5" or "05" that Atoi would accept
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	r := Rank(n)
	if r < Two || r > Ten {
		return 0, false
	}

	return r, true
}

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "S"
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
)

// Suits lists every suit in deck order
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// IsValid returns true if the suit is one of the four suits
func (s Suit) IsValid() bool {
	switch s {
	case Spades, Clubs, Diamonds, Hearts:
		return true
	}

	return false
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the card token, i.e., 10-H
func (c Card) String() string {
	return fmt.Sprintf("%s-%s", c.Rank, c.Suit)
}

// ParseCard parses a card token in the format of <rank>-<suit>
func ParseCard(s string) (Card, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, ok := RankFromString(parts[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, parts[0])
	}

	suit := Suit(parts[1])
	if !suit.IsValid() {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, parts[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString returns a Card from the string.
// It panics if the token is invalid, so it's intended for tests and constants.
func CardFromString(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return c
}

// CardsFromString will return a slice of cards from a comma separated list
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}
