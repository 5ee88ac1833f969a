package protocol

import (
	"fmt"
	"strings"
)

// ParseCommand turns a line typed by a player, such as "RAISE 50" or
// "EXCHANGE 2-H, 10-S", into a request for the given IDs
func ParseCommand(line string, gameID, playerID int) (*Request, error) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)

	move, ok := MoveFromString(parts[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}

	params := ""
	if len(parts) == 2 {
		params = strings.TrimSpace(parts[1])
	}

	switch move {
	case Join, Fold, Call, Status, Exit:
		if params != "" {
			return nil, fmt.Errorf("%w: %s takes no parameters", ErrInvalidCommand, move)
		}
	case Raise, NewGame:
		if params == "" {
			return nil, fmt.Errorf("%w: %s requires parameters", ErrInvalidCommand, move)
		}
	case Exchange:
		params = strings.ToUpper(params)
	}

	return NewRequest(gameID, playerID, move, params), nil
}
