package game

import (
	"fmt"
	"strings"

	"fivecarddraw-server/pkg/protocol"
)

var statusOnly = protocol.MoveNames{protocol.Status}

// status describes the game from the point of view of the participant
func (g *Game) status(p *Participant) string {
	switch {
	case !p.IsAssigned() && g.round == RoundCreated:
		return possibleMoves + p.Moves().String()
	case !p.IsAssigned() && g.round == RoundJoining:
		return fmt.Sprintf("%s%s\nJoining the game requires an ante of: %d", possibleMoves, p.Moves(), g.ante)
	case !p.IsAssigned():
		return fmt.Sprintf("%s%s\nA game is in progress! Wait for the next one", possibleMoves, p.Moves())
	case p.Passed && g.round < RoundShowdown:
		return fmt.Sprintf("%s%s\nYou have folded in this game! Wait for it to end", possibleMoves, statusOnly)
	case g.round.inPlay():
		return g.playStatus(p)
	case g.round == RoundJoining:
		return fmt.Sprintf("%s%s\nWaiting for the required number of players to join...", possibleMoves, p.Moves())
	case g.round == RoundShowdown && !g.IsWinner(p.ID):
		return fmt.Sprintf("%s%s\n%s The winner is the player with ID: %s", possibleMoves, statusOnly, protocol.GameOverPrefix, formatIDs(g.winners))
	case g.round == RoundShowdown:
		return fmt.Sprintf("%s%s\n%s You won! Your winnings: %.2f", possibleMoves, statusOnly, protocol.GameOverPrefix, g.WinAmount())
	}

	return possibleMoves + p.Moves().String()
}

func (g *Game) playStatus(p *Participant) string {
	sb := &strings.Builder{}
	sb.WriteString(possibleMoves)

	if g.turn == p.ID {
		if g.round.IsBetting() && p.Bet == g.highestBet {
			sb.WriteString(protocol.MoveNames{protocol.Fold, protocol.Raise, protocol.Status}.String())
		} else {
			sb.WriteString(p.Moves().String())
		}
	} else {
		sb.WriteString(statusOnly.String())
	}

	fmt.Fprintf(sb, "\nYour cards: %s", p.hand)
	fmt.Fprintf(sb, "\nYour bet: %d, highest bet in the game: %d", p.Bet, g.highestBet)

	if g.turn == p.ID {
		sb.WriteString("\nTurn: your turn!")
	} else {
		fmt.Fprintf(sb, "\nTurn: player %d", g.turn)
	}

	return sb.String()
}

func formatIDs(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = fmt.Sprint(id)
	}

	return "[" + strings.Join(s, ", ") + "]"
}
