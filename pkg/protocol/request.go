package protocol

import (
	"fmt"
	"strings"
)

// frame keys
const (
	KeyGameID   = "GAME_ID"
	KeyPlayerID = "PLAYER_ID"
	KeyMove     = "MOVE"
	KeyParams   = "PARAMS"
)

// Request is a move request sent by a client
type Request struct {
	GameID   string   `json:"gameId"`
	PlayerID string   `json:"playerId"`
	Move     MoveName `json:"move"`
	Params   string   `json:"params"`
}

// NewRequest returns a request for the given IDs
func NewRequest(gameID, playerID int, move MoveName, params string) *Request {
	return &Request{
		GameID:   fmt.Sprint(gameID),
		PlayerID: fmt.Sprint(playerID),
		Move:     move,
		Params:   params,
	}
}

// ParseRequest parses a frame of KEY:value lines into a Request.
// All four keys must be present, the PARAMS value may be empty.
func ParseRequest(frame string) (*Request, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(frame), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFrame, line)
		}

		fields[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	for _, key := range []string{KeyGameID, KeyPlayerID, KeyMove, KeyParams} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	return &Request{
		GameID:   fields[KeyGameID],
		PlayerID: fields[KeyPlayerID],
		Move:     MoveName(strings.ToUpper(fields[KeyMove])),
		Params:   fields[KeyParams],
	}, nil
}

// Frame renders the request in the wire format understood by ParseRequest
func (r *Request) Frame() string {
	return fmt.Sprintf("%s:%s\n%s:%s\n%s:%s\n%s:%s",
		KeyGameID, r.GameID,
		KeyPlayerID, r.PlayerID,
		KeyMove, r.Move,
		KeyParams, r.Params,
	)
}
