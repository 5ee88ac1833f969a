package room

import (
	"context"
	"sync"
	"sync/atomic"

	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/internal/util"
	"fivecarddraw-server/pkg/game"
	"fivecarddraw-server/pkg/protocol"

	"github.com/sirupsen/logrus"
)

// Room owns the game in progress and every connected client
// All access to the game happens inside the run loop
type Room struct {
	ids    *IDGenerator
	rng    rng.Generator
	logger logrus.FieldLogger

	clients map[*Client]bool
	game    *game.Game

	execInRunLoop chan func()
	close         chan struct{}
	closeOnce     sync.Once
}

// New returns a room with a fresh game. Call Open() to start the run loop.
func New(logger logrus.FieldLogger, ids *IDGenerator, r rng.Generator) *Room {
	if r == nil {
		r = rng.Crypto{}
	}

	room := &Room{
		ids:           ids,
		rng:           r,
		logger:        logger,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan struct{}),
	}

	room.newGame()
	return room
}

// Open starts the run loop
func (r *Room) Open() {
	go r.runLoop()
}

// Close stops the run loop
func (r *Room) Close() {
	r.closeOnce.Do(func() {
		close(r.close)
	})
}

func (r *Room) runLoop() {
	r.logger.Debug("starting room run loop")
	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

const (
	execPending int32 = iota
	execRunning
	execAbandoned
)

// exec runs fn inside the run loop and waits for it to finish. If the
// caller gives up before the loop picks fn up, fn is skipped.
func (r *Room) exec(ctx context.Context, fn func()) error {
	select {
	case <-r.close:
		return ErrRoomClosed
	default:
	}

	var state atomic.Int32
	done := make(chan struct{})
	wrapped := func() {
		if !state.CompareAndSwap(execPending, execRunning) {
			return
		}

		fn()
		close(done)
	}

	// abandon returns err unless fn is already running, in which case
	// it waits for fn to finish
	abandon := func(err error) error {
		if state.CompareAndSwap(execPending, execAbandoned) {
			return err
		}

		<-done
		return nil
	}

	select {
	case r.execInRunLoop <- wrapped:
	case <-r.close:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-r.close:
		return abandon(ErrRoomClosed)
	case <-ctx.Done():
		return abandon(ctx.Err())
	}
}

// NOTE: must only be called from the run loop or the constructor
func (r *Room) newGame() {
	id := r.ids.Next()
	r.game = game.NewGame(r.logger, id, r.rng)
	r.logger.WithField("gameID", id).Info("waiting for a new game")
}

// Connect registers a new client and returns the greeting for it
func (r *Room) Connect(ctx context.Context) (client *Client, greeting string, err error) {
	err = r.exec(ctx, func() {
		client = newClient(util.GetRandomName(r.rng))
		r.clients[client] = true

		p := client.participant
		if r.game.Round() > game.RoundCreated {
			p.SetMoves(protocol.Join, protocol.Status, protocol.Exit)
		}

		greeting = "Possible moves: " + p.Moves().String()
		r.logger.WithField("client", client.String()).Info("client connected")
	})
	if err != nil {
		return nil, "", err
	}

	return client, greeting, nil
}

// Disconnect removes a client whose connection went away
func (r *Room) Disconnect(ctx context.Context, client *Client) error {
	return r.exec(ctx, func() {
		if !r.clients[client] {
			return
		}

		// a seated participant keeps their seat once the cards are dealt
		if r.game.Round() <= game.RoundJoining {
			r.game.RemoveParticipant(client.participant)
		}

		r.removeClient(client)
		r.logger.WithField("client", client.String()).Info("client disconnected")
	})
}

// NOTE: must only be called from the run loop
func (r *Room) removeClient(client *Client) {
	delete(r.clients, client)
	if len(r.clients) == 0 && r.game.Round() > game.RoundCreated {
		r.newGame()
	}
}

// Process executes a move for the client. If done is true, the client has
// left and the connection should be closed after the result is delivered.
func (r *Room) Process(ctx context.Context, client *Client, req *protocol.Request) (result string, done bool, err error) {
	known := true
	err = r.exec(ctx, func() {
		if known = r.clients[client]; known {
			result, done = r.process(client, req)
		}
	})

	if err == nil && !known {
		err = ErrUnknownClient
	}

	return result, done, err
}

// NOTE: must only be called from the run loop
func (r *Room) process(client *Client, req *protocol.Request) (string, bool) {
	p := client.participant
	log := r.logger.WithFields(logrus.Fields{
		"client": client.String(),
		"move":   req.Move,
	})

	if req.Move == protocol.Exit && p.CanMove(protocol.Exit) {
		result := r.game.Leave(p)
		p.Reset()
		r.removeClient(client)
		log.Info("client left")
		return result, true
	}

	result := r.game.ProcessMove(p, req)
	log.WithField("result", result).Debug("processed move")

	if result == game.MsgNewGame {
		for c := range r.clients {
			if !c.participant.IsAssigned() {
				c.participant.SetMoves(protocol.Join, protocol.Status, protocol.Exit)
			}
		}
	}

	if r.game.Round() == game.RoundShowdown && r.game.AllCheckedResults() {
		log.WithFields(logrus.Fields{
			"gameID":  r.game.ID(),
			"winners": r.game.Winners(),
			"amount":  r.game.WinAmount(),
		}).Info("game over")

		participants := make([]*game.Participant, 0, len(r.clients))
		for c := range r.clients {
			participants = append(participants, c.participant)
		}

		r.game.End(participants)
		r.newGame()
	}

	return result, false
}

// Snapshot returns the public view of the current game
func (r *Room) Snapshot(ctx context.Context) (snapshot *game.Snapshot, err error) {
	err = r.exec(ctx, func() {
		snapshot = r.game.Snapshot()
	})

	return snapshot, err
}

// ClientCount returns the number of connected clients
func (r *Room) ClientCount(ctx context.Context) (count int, err error) {
	err = r.exec(ctx, func() {
		count = len(r.clients)
	})

	return count, err
}
