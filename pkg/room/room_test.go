package room

import (
	"context"
	"testing"

	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/pkg/game"
	"fivecarddraw-server/pkg/protocol"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom(t *testing.T) *Room {
	t.Helper()

	r := New(logrus.StandardLogger(), NewIDGenerator(), rng.New(1))
	r.Open()
	t.Cleanup(r.Close)

	return r
}

func connect(t *testing.T, r *Room) (*Client, string) {
	t.Helper()

	c, greeting, err := r.Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)

	return c, greeting
}

func process(t *testing.T, r *Room, c *Client, gameID, playerID int, move protocol.MoveName, params string) (string, bool) {
	t.Helper()

	result, done, err := r.Process(context.Background(), c, protocol.NewRequest(gameID, playerID, move, params))
	require.NoError(t, err)

	return result, done
}

func snapshot(t *testing.T, r *Room) *game.Snapshot {
	t.Helper()

	s, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	return s
}

func TestRoom_Connect(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)

	c1, greeting := connect(t, r)
	a.Equal("Possible moves: [NEW_GAME, STATUS, EXIT]", greeting)
	a.NotEmpty(c1.Name)
	a.Contains(c1.String(), c1.ID.String())

	result, done := process(t, r, c1, 0, 0, protocol.NewGame, "2,10")
	a.Equal(game.MsgNewGame, result)
	a.False(done)
	a.Equal(protocol.MoveNames{protocol.Join, protocol.Status, protocol.Exit}, c1.participant.Moves())

	c2, greeting := connect(t, r)
	a.Equal("Possible moves: [JOIN, STATUS, EXIT]", greeting)
	a.NotEqual(c1.ID, c2.ID)

	count, err := r.ClientCount(context.Background())
	a.NoError(err)
	a.Equal(2, count)
}

func TestRoom_FullGame(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)

	c1, _ := connect(t, r)
	c2, _ := connect(t, r)

	result, _ := process(t, r, c1, 0, 0, protocol.NewGame, "2, 10")
	a.Equal(game.MsgNewGame, result)

	// the second client connected before the game was created
	a.Equal(protocol.MoveNames{protocol.Join, protocol.Status, protocol.Exit}, c2.participant.Moves())

	result, _ = process(t, r, c1, 0, 0, protocol.Join, "")
	a.Equal(protocol.JoinedMessage(1, 1), result)
	result, _ = process(t, r, c2, 0, 0, protocol.Join, "")
	a.Equal(protocol.JoinedMessage(1, 2), result)

	s := snapshot(t, r)
	a.Equal(1, s.GameID)
	a.Equal(game.RoundBetting1, s.Round)
	a.Equal(1, s.Turn)

	result, _ = process(t, r, c2, 1, 2, protocol.Fold, "")
	a.Equal(game.MsgNotYourTurn, result)

	result, _ = process(t, r, c1, 1, 1, protocol.Fold, "")
	a.Equal(game.MsgSuccess, result)
	a.Equal(game.RoundShowdown, snapshot(t, r).Round)

	result, _ = process(t, r, c1, 1, 1, protocol.Status, "")
	a.Equal("Possible moves: [STATUS]\nThe game is over! The winner is the player with ID: [2]", result)
	a.Equal(1, snapshot(t, r).GameID)

	result, _ = process(t, r, c2, 1, 2, protocol.Status, "")
	a.Equal("Possible moves: [STATUS]\nThe game is over! You won! Your winnings: 20.00", result)

	// everyone has seen the results, a new game is waiting
	s = snapshot(t, r)
	a.Equal(2, s.GameID)
	a.Equal(game.RoundCreated, s.Round)
	a.Empty(s.Participants)

	for _, c := range []*Client{c1, c2} {
		a.False(c.participant.IsAssigned())
		a.Equal(protocol.MoveNames{protocol.NewGame, protocol.Status, protocol.Exit}, c.participant.Moves())
	}

	result, _ = process(t, r, c2, 0, 0, protocol.NewGame, "3,5")
	a.Equal(game.MsgNewGame, result)
	result, _ = process(t, r, c1, 0, 0, protocol.Join, "")
	a.Equal(protocol.JoinedMessage(2, 1), result)
}

func TestRoom_Exit(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)

	c1, _ := connect(t, r)
	c2, _ := connect(t, r)

	result, done := process(t, r, c1, 0, 0, protocol.Exit, "")
	a.Equal(protocol.GoodbyeMessage, result)
	a.True(done)

	_, _, err := r.Process(context.Background(), c1, protocol.NewRequest(0, 0, protocol.Status, ""))
	a.ErrorIs(err, ErrUnknownClient)

	count, err := r.ClientCount(context.Background())
	a.NoError(err)
	a.Equal(1, count)

	// the game was never created, so it is kept
	a.Equal(1, snapshot(t, r).GameID)

	result, _ = process(t, r, c2, 0, 0, protocol.NewGame, "2,10")
	a.Equal(game.MsgNewGame, result)
	result, _ = process(t, r, c2, 0, 0, protocol.Join, "")
	a.Equal(protocol.JoinedMessage(1, 1), result)
	a.Len(snapshot(t, r).Participants, 1)

	// the last client leaves the joining game, which is replaced
	result, done = process(t, r, c2, 1, 1, protocol.Exit, "")
	a.Equal(protocol.GoodbyeMessage, result)
	a.True(done)

	s := snapshot(t, r)
	a.Equal(2, s.GameID)
	a.Equal(game.RoundCreated, s.Round)
}

func TestRoom_ExitNotAvailable(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)

	c1, _ := connect(t, r)
	c2, _ := connect(t, r)

	process(t, r, c1, 0, 0, protocol.NewGame, "2,10")
	process(t, r, c1, 0, 0, protocol.Join, "")
	process(t, r, c2, 0, 0, protocol.Join, "")

	// cards are dealt, leaving is no longer possible
	result, done := process(t, r, c1, 1, 1, protocol.Exit, "")
	a.Equal(game.MsgMoveNotAvailable, result)
	a.False(done)
}

func TestRoom_Disconnect(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)
	ctx := context.Background()

	c1, _ := connect(t, r)
	c2, _ := connect(t, r)

	process(t, r, c1, 0, 0, protocol.NewGame, "3,10")
	process(t, r, c1, 0, 0, protocol.Join, "")
	process(t, r, c2, 0, 0, protocol.Join, "")
	a.Len(snapshot(t, r).Participants, 2)

	a.NoError(r.Disconnect(ctx, c1))
	s := snapshot(t, r)
	a.Len(s.Participants, 1)
	a.Equal(2, s.Participants[0].ID)

	// disconnecting twice is a no-op
	a.NoError(r.Disconnect(ctx, c1))

	a.NoError(r.Disconnect(ctx, c2))
	s = snapshot(t, r)
	a.Equal(2, s.GameID)
	a.Equal(game.RoundCreated, s.Round)
}

func TestRoom_Closed(t *testing.T) {
	a := assert.New(t)

	r := New(logrus.StandardLogger(), NewIDGenerator(), nil)
	r.Open()
	r.Close()
	r.Close()

	_, _, err := r.Connect(context.Background())
	a.ErrorIs(err, ErrRoomClosed)

	_, err = r.Snapshot(context.Background())
	a.ErrorIs(err, ErrRoomClosed)
}

func TestRoom_ContextCanceled(t *testing.T) {
	// the run loop is never started
	r := New(logrus.StandardLogger(), NewIDGenerator(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoom_ConnectCanceledWhileQueued(t *testing.T) {
	a := assert.New(t)
	r := newTestRoom(t)

	// hold the run loop so the connect stays queued
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = r.exec(context.Background(), func() {
			close(started)
			<-release
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	connected := make(chan error, 1)
	go func() {
		_, _, err := r.Connect(ctx)
		connected <- err
	}()

	cancel()
	a.ErrorIs(<-connected, context.Canceled)
	close(release)

	count, err := r.ClientCount(context.Background())
	a.NoError(err)
	a.Equal(0, count)
}
