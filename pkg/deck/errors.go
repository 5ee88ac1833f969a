package deck

import "errors"

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInvalidCard is returned when a card token cannot be parsed
var ErrInvalidCard = errors.New("invalid card")
