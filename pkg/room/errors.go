package room

import "errors"

// ErrRoomClosed is returned when the room is no longer running
var ErrRoomClosed = errors.New("room is closed")

// ErrUnknownClient is returned for a client that is not connected to the room
var ErrUnknownClient = errors.New("client is not connected")
