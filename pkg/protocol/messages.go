package protocol

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Messages the client needs to recognize
const (
	GoodbyeMessage = "See you!"
	GameOverPrefix = "The game is over!"
)

// InvalidFrameMessage is the response to a frame that could not be parsed
const InvalidFrameMessage = "Invalid move!"

// JoinedMessage is the response to a successful JOIN
func JoinedMessage(gameID, playerID int) string {
	return fmt.Sprintf("Joined the game with ID: %d! Your ID: %d", gameID, playerID)
}

var joinedRx = regexp.MustCompile(`^Joined the game with ID: (\d+)! Your ID: (\d+)`)

// ParseJoinedMessage extracts the IDs from a JoinedMessage
func ParseJoinedMessage(s string) (gameID, playerID int, ok bool) {
	match := joinedRx.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, false
	}

	gameID, _ = strconv.Atoi(match[1])
	playerID, _ = strconv.Atoi(match[2])
	return gameID, playerID, true
}

// Session keeps track of the IDs a client has been assigned
type Session struct {
	GameID   int
	PlayerID int
}

// Observe updates the session from a server response and reports whether
// the server said goodbye
func (s *Session) Observe(response string) (done bool) {
	if response == GoodbyeMessage {
		return true
	}

	if gameID, playerID, ok := ParseJoinedMessage(response); ok {
		s.GameID = gameID
		s.PlayerID = playerID
	} else if strings.Contains(response, GameOverPrefix) {
		s.GameID = 0
		s.PlayerID = 0
	}

	return false
}
