package game

import (
	"fmt"
	"strconv"
	"strings"

	"fivecarddraw-server/pkg/deck"
	"fivecarddraw-server/pkg/protocol"
)

// Move executes a validated move and returns the result for the participant
type Move interface {
	Execute(g *Game, p *Participant, params string) string
}

// MoveFunc is an adapter to allow the use of ordinary functions as a Move
type MoveFunc func(g *Game, p *Participant, params string) string

// Execute calls f(g, p, params)
func (f MoveFunc) Execute(g *Game, p *Participant, params string) string {
	return f(g, p, params)
}

var moves = map[protocol.MoveName]Move{
	protocol.Join:     MoveFunc(join),
	protocol.Fold:     MoveFunc(fold),
	protocol.Call:     MoveFunc(call),
	protocol.Raise:    MoveFunc(raise),
	protocol.Exchange: MoveFunc(exchange),
	protocol.NewGame:  MoveFunc(newGame),
	protocol.Status:   MoveFunc(status),
	protocol.Exit:     MoveFunc(exit),
}

func join(g *Game, p *Participant, _ string) string {
	if len(g.participants) >= g.required {
		return MsgTableFull
	}

	g.AddParticipant(p)
	return protocol.JoinedMessage(g.id, p.ID)
}

func fold(_ *Game, p *Participant, _ string) string {
	p.Passed = true
	p.LastMove = protocol.Fold
	return MsgSuccess
}

func call(g *Game, p *Participant, _ string) string {
	p.Bet = g.highestBet
	p.LastMove = protocol.Call
	return MsgSuccess
}

func raise(g *Game, p *Participant, params string) string {
	amount, _ := strconv.Atoi(strings.TrimSpace(params))
	g.highestBet += amount
	p.Bet = g.highestBet
	p.LastMove = protocol.Raise
	return MsgSuccess
}

func exchange(g *Game, p *Participant, params string) string {
	cards, _ := parseExchange(params)
	for _, card := range cards {
		p.hand.Discard(card)
	}

	for range cards {
		card, err := g.deck.Draw()
		if err != nil {
			panic(fmt.Sprintf("could not draw a replacement card: %v", err))
		}

		p.hand.AddCard(card)
	}

	p.LastMove = protocol.Exchange
	return MsgSuccess
}

func newGame(g *Game, _ *Participant, params string) string {
	count, ante, _ := parseNewGame(params)
	g.start(count, ante)
	return MsgNewGame
}

func status(g *Game, p *Participant, _ string) string {
	s := g.status(p)
	if g.round == RoundShowdown {
		p.LastMove = protocol.Status
	}

	return s
}

func exit(g *Game, p *Participant, _ string) string {
	if g != nil {
		g.RemoveParticipant(p)
	}

	return MsgGoodbye
}

// parseExchange parses the comma separated list of cards to discard.
// An empty string means the participant keeps every card.
func parseExchange(params string) ([]deck.Card, bool) {
	if strings.TrimSpace(params) == "" {
		return nil, true
	}

	tokens := strings.Split(params, ",")
	if len(tokens) > deck.HandSize-1 {
		return nil, false
	}

	cards := make([]deck.Card, 0, len(tokens))
	seen := make(map[deck.Card]bool)
	for _, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil || seen[card] {
			return nil, false
		}

		seen[card] = true
		cards = append(cards, card)
	}

	return cards, true
}

// parseNewGame parses "count,ante"
func parseNewGame(params string) (count, ante int, ok bool) {
	parts := strings.Split(params, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}

	ante, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}

	if count < minParticipants || count > maxParticipants || ante < 0 || ante > maxBet {
		return 0, 0, false
	}

	return count, ante, true
}
