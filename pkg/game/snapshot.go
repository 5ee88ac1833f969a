package game

import "fivecarddraw-server/pkg/protocol"

// Snapshot is the public view of a game
type Snapshot struct {
	GameID       int                   `json:"gameId"`
	Round        Round                 `json:"round"`
	RoundName    string                `json:"roundName"`
	Required     int                   `json:"required"`
	Ante         int                   `json:"ante"`
	HighestBet   int                   `json:"highestBet"`
	Turn         int                   `json:"turn"`
	Pot          int                   `json:"pot"`
	CardsLeft    int                   `json:"cardsLeft"`
	Winners      []int                 `json:"winners"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// ParticipantSnapshot is the public view of a seated participant
// Cards are never included
type ParticipantSnapshot struct {
	ID        int               `json:"id"`
	Bet       int               `json:"bet"`
	Passed    bool              `json:"passed"`
	LastMove  protocol.MoveName `json:"lastMove"`
	CardCount int               `json:"cardCount"`
}

// Snapshot returns a JSON friendly view of the game
func (g *Game) Snapshot() *Snapshot {
	participants := make([]ParticipantSnapshot, len(g.participants))
	for i, p := range g.participants {
		participants[i] = ParticipantSnapshot{
			ID:        p.ID,
			Bet:       p.Bet,
			Passed:    p.Passed,
			LastMove:  p.LastMove,
			CardCount: len(p.hand),
		}
	}

	return &Snapshot{
		GameID:       g.id,
		Round:        g.round,
		RoundName:    g.round.String(),
		Required:     g.required,
		Ante:         g.ante,
		HighestBet:   g.highestBet,
		Turn:         g.turn,
		Pot:          g.pot,
		CardsLeft:    g.deck.CardsLeft(),
		Winners:      g.Winners(),
		Participants: participants,
	}
}
