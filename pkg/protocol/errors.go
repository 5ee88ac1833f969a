package protocol

import "errors"

// ErrMissingField is returned when a frame lacks one of the request keys
var ErrMissingField = errors.New("missing field")

// ErrMalformedFrame is returned when a frame line is not in the KEY:value format
var ErrMalformedFrame = errors.New("malformed frame")

// ErrInvalidCommand is returned when client input does not name a move
var ErrInvalidCommand = errors.New("invalid command")
