package tcp

import (
	"context"
	"errors"
	"net"
	"sync"

	"fivecarddraw-server/pkg/protocol"
	"fivecarddraw-server/pkg/room"

	"github.com/sirupsen/logrus"
)

// Server accepts TCP connections and feeds their frames to the room
type Server struct {
	addr string
	room *room.Room

	lock     sync.Mutex
	listener net.Listener
	conns    map[net.Conn]bool
	wg       sync.WaitGroup
}

// NewServer returns a server for the address
func NewServer(addr string, rm *room.Room) *Server {
	return &Server{
		addr:  addr,
		room:  rm,
		conns: make(map[net.Conn]bool),
	}
}

// Listen opens the listening socket
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.lock.Lock()
	s.listener = l
	s.lock.Unlock()

	return nil
}

// Addr returns the listening address, or nil before Listen()
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Serve accepts connections until the context is canceled. Listen() is called
// if the server is not listening yet.
func (s *Server) Serve(ctx context.Context) error {
	if s.Addr() == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	logrus.WithField("addr", s.Addr().String()).Info("starting TCP server")

	go func() {
		<-ctx.Done()
		s.shutdown()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}

			return err
		}

		s.lock.Lock()
		s.conns[conn] = true
		s.lock.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

func (s *Server) shutdown() {
	s.lock.Lock()
	defer s.lock.Unlock()

	_ = s.listener.Close()
	for conn := range s.conns {
		_ = conn.Close()
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	log := logrus.WithFields(logrus.Fields{
		"remoteAddr": conn.RemoteAddr().String(),
		"transport":  "tcp",
	})

	defer func() {
		s.lock.Lock()
		delete(s.conns, conn)
		s.lock.Unlock()

		_ = conn.Close()
	}()

	client, greeting, err := s.room.Connect(ctx)
	if err != nil {
		log.WithError(err).Error("could not connect to the room")
		return
	}

	log = log.WithField("client", client.String())
	defer func() {
		// the room may be gone by now, so don't use the canceled context
		if err := s.room.Disconnect(context.Background(), client); err != nil && !errors.Is(err, room.ErrRoomClosed) {
			log.WithError(err).Warn("could not disconnect client")
		}
	}()

	if err := protocol.WriteFrame(conn, greeting); err != nil {
		log.WithError(err).Error("could not write greeting")
		return
	}

	scanner := protocol.NewFrameScanner(conn)
	for scanner.Scan() {
		response, done := s.respond(ctx, log, client, scanner.Text())
		if err := protocol.WriteFrame(conn, response); err != nil {
			log.WithError(err).Error("could not write response")
			return
		}

		if done {
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.WithError(err).Warn("could not read frame")
	}
}

func (s *Server) respond(ctx context.Context, log logrus.FieldLogger, client *room.Client, frame string) (string, bool) {
	req, err := protocol.ParseRequest(frame)
	if err != nil {
		log.WithError(err).Warn("could not parse frame")
		return protocol.InvalidFrameMessage, false
	}

	result, done, err := s.room.Process(ctx, client, req)
	if err != nil {
		log.WithError(err).Error("could not process move")
		return err.Error(), true
	}

	return result, done
}
