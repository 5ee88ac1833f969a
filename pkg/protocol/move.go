package protocol

import "strings"

// MoveName identifies a move a participant can make
type MoveName string

// move constants
const (
	Join     MoveName = "JOIN"
	Fold     MoveName = "FOLD"
	Call     MoveName = "CALL"
	Raise    MoveName = "RAISE"
	Exchange MoveName = "EXCHANGE"
	Status   MoveName = "STATUS"
	NewGame  MoveName = "NEW_GAME"
	Exit     MoveName = "EXIT"
)

var allowedMoves = map[MoveName]bool{
	Join:     true,
	Fold:     true,
	Call:     true,
	Raise:    true,
	Exchange: true,
	Status:   true,
	NewGame:  true,
	Exit:     true,
}

// MoveFromString returns the move for the given string, ignoring case
func MoveFromString(s string) (MoveName, bool) {
	m := MoveName(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := allowedMoves[m]; ok {
		return m, true
	}

	return "", false
}

// IsValid returns true if the move is one of the known moves
func (m MoveName) IsValid() bool {
	_, ok := allowedMoves[m]
	return ok
}

// MoveNames is an ordered set of moves
type MoveNames []MoveName

// Contains returns true if the move is in the set
func (m MoveNames) Contains(move MoveName) bool {
	for _, name := range m {
		if name == move {
			return true
		}
	}

	return false
}

// String returns the moves in the format of [FOLD, CALL]
func (m MoveNames) String() string {
	names := make([]string, len(m))
	for i, name := range m {
		names[i] = string(name)
	}

	return "[" + strings.Join(names, ", ") + "]"
}
