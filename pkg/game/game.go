package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/pkg/deck"
	"fivecarddraw-server/pkg/poker"
	"fivecarddraw-server/pkg/protocol"

	"github.com/sirupsen/logrus"
)

const (
	minParticipants = 2
	maxParticipants = 4

	// maxBet bounds the ante and the highest bet so the pot can't overflow
	maxBet = math.MaxInt32
)

// Game is a single hand of five-card draw
// Game is not safe for concurrent use, callers must serialize access
type Game struct {
	id           int
	participants []*Participant
	nextID       int

	required   int
	ante       int
	highestBet int
	round      Round
	turn       int
	pot        int
	winners    []int

	deck   *deck.Deck
	rng    rng.Generator
	logger logrus.FieldLogger
}

// NewGame returns a game waiting for a NEW_GAME move
func NewGame(logger logrus.FieldLogger, id int, r rng.Generator) *Game {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Game{
		id:     id,
		rng:    r,
		deck:   deck.New(),
		logger: logger.WithField("gameID", id),
	}
}

// ProcessMove validates and executes a move for the participant, then
// advances the game. The returned string is the response for the participant.
func (g *Game) ProcessMove(p *Participant, req *protocol.Request) string {
	if result := g.validate(p, req); result != "" {
		g.logger.WithFields(logrus.Fields{
			"playerID": p.ID,
			"move":     req.Move,
			"result":   result,
		}).Debug("move rejected")
		return result
	}

	result := moves[req.Move].Execute(g, p, req.Params)
	g.logger.WithFields(logrus.Fields{
		"playerID": p.ID,
		"move":     req.Move,
		"params":   req.Params,
	}).Debug("move executed")

	g.adjustGameParameters(req.Move)
	return result
}

// Leave executes EXIT for the participant without any validation
func (g *Game) Leave(p *Participant) string {
	return moves[protocol.Exit].Execute(g, p, "")
}

func (g *Game) validate(p *Participant, req *protocol.Request) string {
	result := ""

	gameID, gameErr := strconv.Atoi(req.GameID)
	playerID, playerErr := strconv.Atoi(req.PlayerID)

	switch {
	case gameErr != nil || playerErr != nil,
		gameID != g.id && p.IsAssigned(),
		playerID != p.ID:
		result = MsgInvalidIDs
	case !p.CanMove(req.Move),
		req.Move == protocol.Call && p.Bet == g.highestBet:
		result = MsgMoveNotAvailable
	case p.IsAssigned() && g.turn != p.ID && g.round > RoundJoining && req.Move != protocol.Status:
		result = MsgNotYourTurn
	}

	switch req.Move {
	case protocol.Exchange:
		cards, ok := parseExchange(req.Params)
		if !ok {
			return MsgInvalidParameters
		}

		for _, card := range cards {
			if !p.hand.HasCard(card) {
				return MsgInvalidParameters
			}
		}

		if !g.deck.CanDraw(len(cards)) {
			return MsgInvalidParameters
		}
	case protocol.Raise:
		amount, err := strconv.Atoi(strings.TrimSpace(req.Params))
		if err != nil || amount <= 0 || amount > maxBet-g.highestBet {
			return MsgInvalidParameters
		}
	case protocol.NewGame:
		if _, _, ok := parseNewGame(req.Params); !ok {
			return MsgInvalidParameters
		}
	}

	return result
}

// start begins the joining round
func (g *Game) start(count, ante int) {
	g.required = count
	g.ante = ante
	g.highestBet = ante
	g.round = RoundJoining

	g.logger.WithFields(logrus.Fields{
		"required": count,
		"ante":     ante,
	}).Info("game started")
}

// AddParticipant seats the participant with the next ID
func (g *Game) AddParticipant(p *Participant) {
	g.nextID++

	p.ID = g.nextID
	p.GameID = g.id
	p.Bet = g.ante
	p.SetMoves(protocol.Status, protocol.Exit)

	g.participants = append(g.participants, p)
}

// RemoveParticipant removes the participant from the game
func (g *Game) RemoveParticipant(p *Participant) {
	for i, participant := range g.participants {
		if participant == p {
			g.participants = append(g.participants[:i:i], g.participants[i+1:]...)
			return
		}
	}
}

func (g *Game) adjustGameParameters(move protocol.MoveName) {
	if move == protocol.Status || move == protocol.NewGame || (move == protocol.Join && g.round > RoundJoining) {
		return
	}

	roundBefore := g.round
	switch g.round {
	case RoundJoining:
		if len(g.participants) == g.required {
			g.round = RoundBetting1
			g.dealCards()
		}
	case RoundBetting1:
		if g.activeCount() == 1 {
			g.round = RoundShowdown
			g.checkResults()
		} else if g.allActiveBetsEqual() {
			g.round = RoundExchange
		}
	case RoundExchange:
		if g.allActiveExchanged() {
			g.round = RoundBetting2
		}
	case RoundBetting2:
		if g.activeCount() == 1 || g.allActiveBetsEqual() {
			g.round = RoundShowdown
			g.checkResults()
		}
	}

	if g.round != roundBefore {
		g.logger.WithFields(logrus.Fields{
			"from": roundBefore,
			"to":   g.round,
		}).Info("round advanced")

		g.updateAllMoves()
		g.turn = 0
	}

	if g.round.inPlay() {
		g.updateTurn()
	}
}

func (g *Game) activeCount() int {
	n := 0
	for _, p := range g.participants {
		if !p.Passed {
			n++
		}
	}

	return n
}

// allActiveBetsEqual requires at least one raise above the ante
func (g *Game) allActiveBetsEqual() bool {
	if g.highestBet == g.ante {
		return false
	}

	for _, p := range g.participants {
		if !p.Passed && p.Bet != g.highestBet {
			return false
		}
	}

	return true
}

func (g *Game) allActiveExchanged() bool {
	for _, p := range g.participants {
		if !p.Passed && p.LastMove != protocol.Exchange {
			return false
		}
	}

	return true
}

// AllCheckedResults returns true once every participant has asked for
// the status after the showdown
func (g *Game) AllCheckedResults() bool {
	for _, p := range g.participants {
		if p.LastMove != protocol.Status {
			return false
		}
	}

	return true
}

// updateTurn moves the turn to the next participant who hasn't passed,
// starting at the first slot when nobody holds the turn
func (g *Game) updateTurn() {
	n := len(g.participants)
	if n == 0 {
		return
	}

	start := -1
	for i, p := range g.participants {
		if p.ID == g.turn {
			start = i
			break
		}
	}

	for step := 1; step <= n; step++ {
		p := g.participants[(start+step)%n]
		if !p.Passed {
			g.turn = p.ID
			return
		}
	}
}

func (g *Game) updateAllMoves() {
	var m protocol.MoveNames
	switch {
	case g.round.IsBetting():
		m = protocol.MoveNames{protocol.Fold, protocol.Call, protocol.Raise, protocol.Status}
	case g.round == RoundExchange:
		m = protocol.MoveNames{protocol.Exchange, protocol.Status}
	case g.round == RoundShowdown:
		m = protocol.MoveNames{protocol.Status}
	default:
		return
	}

	for _, p := range g.participants {
		p.SetMoves(m...)
	}
}

// dealCards deals a freshly shuffled deck one card at a time to each participant
func (g *Game) dealCards() {
	g.deck = deck.New()
	g.deck.Shuffle(g.rng)

	if !g.deck.CanDraw(len(g.participants) * deck.HandSize) {
		panic(fmt.Sprintf("not enough cards for %d participants", len(g.participants)))
	}

	g.logger.WithFields(logrus.Fields{
		"deckHash":     g.deck.HashCode(),
		"participants": len(g.participants),
	}).Info("dealing cards")

	for _, p := range g.participants {
		p.hand = make(deck.Hand, 0, deck.HandSize)
	}

	for i := 0; i < deck.HandSize; i++ {
		for _, p := range g.participants {
			card, err := g.deck.Draw()
			if err != nil {
				panic(fmt.Sprintf("could not deal: %v", err))
			}

			p.hand.AddCard(card)
		}
	}
}

func (g *Game) checkResults() {
	g.pot = 0
	for _, p := range g.participants {
		g.pot += p.Bet
	}

	if g.activeCount() == 1 {
		for _, p := range g.participants {
			if !p.Passed {
				g.winners = []int{p.ID}
			}
		}
	} else {
		contenders := make([]poker.Contender, 0, len(g.participants))
		for _, p := range g.participants {
			if !p.Passed {
				contenders = append(contenders, poker.Contender{ID: p.ID, Hand: p.Hand()})
			}
		}

		g.winners = poker.EvaluateHands(contenders)
	}

	g.logger.WithFields(logrus.Fields{
		"pot":     g.pot,
		"winners": g.winners,
	}).Info("showdown")
}

// End resets the participants once the game is over
func (g *Game) End(ps []*Participant) {
	for _, p := range ps {
		p.Reset()
	}
}

// WinAmount is the share of the pot for each winner, rounded half up to
// two decimal places
func (g *Game) WinAmount() float64 {
	n := len(g.winners)
	if n == 0 {
		return 0
	}

	cents := (2*g.pot*100 + n) / (2 * n)
	return float64(cents) / 100
}

// IsWinner returns true if the participant ID is one of the winners
func (g *Game) IsWinner(id int) bool {
	for _, winner := range g.winners {
		if winner == id {
			return true
		}
	}

	return false
}

// ID returns the game ID
func (g *Game) ID() int {
	return g.id
}

// Round returns the current round
func (g *Game) Round() Round {
	return g.round
}

// Turn returns the ID of the participant whose turn it is
func (g *Game) Turn() int {
	return g.turn
}

// Ante returns the ante
func (g *Game) Ante() int {
	return g.ante
}

// HighestBet returns the highest bet of the game
func (g *Game) HighestBet() int {
	return g.highestBet
}

// Required returns how many participants the game needs to start
func (g *Game) Required() int {
	return g.required
}

// Pot returns the pot, which is only calculated at the showdown
func (g *Game) Pot() int {
	return g.pot
}

// Winners returns the winning participant IDs
func (g *Game) Winners() []int {
	return append([]int{}, g.winners...)
}

// Participants returns a shallow copy of the seated participants
func (g *Game) Participants() []*Participant {
	return append([]*Participant{}, g.participants...)
}
