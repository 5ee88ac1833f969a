package game

// Round is the stage a game is in
type Round int

// Rounds only ever move forward
const (
	RoundCreated Round = iota
	RoundJoining
	RoundBetting1
	RoundExchange
	RoundBetting2
	RoundShowdown
)

func (r Round) String() string {
	switch r {
	case RoundCreated:
		return "created"
	case RoundJoining:
		return "joining"
	case RoundBetting1:
		return "betting-1"
	case RoundExchange:
		return "exchange"
	case RoundBetting2:
		return "betting-2"
	case RoundShowdown:
		return "showdown"
	}

	return "unknown"
}

// IsBetting returns true for either betting round
func (r Round) IsBetting() bool {
	return r == RoundBetting1 || r == RoundBetting2
}

// inPlay returns true while cards are in the participants' hands and
// the turn pointer matters
func (r Round) inPlay() bool {
	return r >= RoundBetting1 && r < RoundShowdown
}
