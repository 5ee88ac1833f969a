package game

import (
	"fivecarddraw-server/pkg/deck"
	"fivecarddraw-server/pkg/protocol"
)

// defaultMoves are the moves of a participant who is not seated in a game
var defaultMoves = protocol.MoveNames{protocol.NewGame, protocol.Status, protocol.Exit}

// Participant is a connected player. An ID of zero means the participant
// has not joined the current game.
type Participant struct {
	ID       int
	GameID   int
	Bet      int
	Passed   bool
	LastMove protocol.MoveName

	moves protocol.MoveNames
	hand  deck.Hand
}

// NewParticipant returns an unassigned participant
func NewParticipant() *Participant {
	p := &Participant{}
	p.Reset()
	return p
}

// Reset restores the participant to the unassigned state
func (p *Participant) Reset() {
	p.ID = 0
	p.GameID = 0
	p.Bet = 0
	p.Passed = false
	p.LastMove = ""
	p.SetMoves(defaultMoves...)
	p.hand = nil
}

// IsAssigned returns true if the participant has joined a game
func (p *Participant) IsAssigned() bool {
	return p.ID != 0
}

// SetMoves replaces the legal moves of the participant
func (p *Participant) SetMoves(moves ...protocol.MoveName) {
	p.moves = append(protocol.MoveNames{}, moves...)
}

// Moves returns a copy of the legal moves
func (p *Participant) Moves() protocol.MoveNames {
	return append(protocol.MoveNames{}, p.moves...)
}

// CanMove returns true if the move is currently legal for the participant
func (p *Participant) CanMove(move protocol.MoveName) bool {
	return p.moves.Contains(move)
}

// Hand returns a copy of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// SetHand replaces the participant's hand
func (p *Participant) SetHand(hand deck.Hand) {
	p.hand = hand.Clone()
}
