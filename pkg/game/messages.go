package game

import "fivecarddraw-server/pkg/protocol"

// Results of ProcessMove that callers may need to match against
const (
	MsgInvalidIDs        = "Move made by a player with invalid IDs!"
	MsgMoveNotAvailable  = "Move is not available!"
	MsgNotYourTurn       = "It is not your turn!"
	MsgInvalidParameters = "Invalid parameters!"
	MsgSuccess           = "Move executed successfully!"
	MsgTableFull         = "The game already has the maximum number of players! Wait for the next game or leave the server by typing 'EXIT'"
	MsgNewGame           = "A new game has been created!"
	MsgGoodbye           = protocol.GoodbyeMessage
)

const possibleMoves = "Possible moves: "
