package room

import (
	"fmt"

	"fivecarddraw-server/pkg/game"

	"github.com/google/uuid"
)

// Client is a connection to the room over any transport
type Client struct {
	ID   uuid.UUID
	Name string

	participant *game.Participant
}

func newClient(name string) *Client {
	return &Client{
		ID:          uuid.New(),
		Name:        name,
		participant: game.NewParticipant(),
	}
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}
