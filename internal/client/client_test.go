package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/internal/tcp"
	"fivecarddraw-server/pkg/game"
	"fivecarddraw-server/pkg/protocol"
	"fivecarddraw-server/pkg/room"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	t.Helper()

	rm := room.New(logrus.StandardLogger(), room.NewIDGenerator(), rng.New(1))
	rm.Open()
	t.Cleanup(rm.Close)

	s := tcp.NewServer("127.0.0.1:0", rm)
	require.NoError(t, s.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = s.Serve(ctx)
	}()

	return s.Addr().String()
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	addr := startServer(t)

	out := &bytes.Buffer{}
	in := strings.NewReader("new_game 3,10\n\nCHECK\nJOIN\nSTATUS\nEXIT\nSTATUS\n")

	err := Run(context.Background(), Config{Addr: addr, In: in, Out: out})
	a.NoError(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	a.Equal("Possible moves: [NEW_GAME, STATUS, EXIT]", lines[0])
	a.Equal(game.MsgNewGame, lines[1])
	a.True(strings.HasPrefix(lines[2], "Invalid command!"))
	a.Equal(protocol.JoinedMessage(1, 1), lines[3])

	// the status request used the IDs from the join response
	a.Equal("Possible moves: [STATUS, EXIT]", lines[4])
	a.Equal("Waiting for the required number of players to join...", lines[5])
	a.Equal(protocol.GoodbyeMessage, lines[6])
}

func TestRun_Prompt(t *testing.T) {
	a := assert.New(t)
	addr := startServer(t)

	out := &bytes.Buffer{}
	err := Run(context.Background(), Config{Addr: addr, In: strings.NewReader("STATUS\n"), Out: out, Prompt: true})
	a.NoError(err)
	a.Equal("Possible moves: [NEW_GAME, STATUS, EXIT]\n> Possible moves: [NEW_GAME, STATUS, EXIT]\n> ", out.String())
}

func TestRun_ConnectionRefused(t *testing.T) {
	err := Run(context.Background(), Config{Addr: "127.0.0.1:1", In: strings.NewReader(""), Out: &bytes.Buffer{}})
	assert.Error(t, err)
}
