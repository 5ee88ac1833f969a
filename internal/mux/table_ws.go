package mux

import (
	"context"
	"net/http"
	"time"

	"fivecarddraw-server/pkg/protocol"
	"fivecarddraw-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsClient couples a room client with its websocket connection
type wsClient struct {
	conn   *websocket.Conn
	client *room.Client
	log    logrus.FieldLogger

	// send is closed by the read loop, after which the write loop sends a
	// close frame with closeReason
	send        chan string
	closeReason string
}

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		ctx := context.Background()
		client, greeting, err := m.room.Connect(ctx)
		if err != nil {
			logrus.WithError(err).Error("could not connect to the room")
			_ = conn.Close()
			return
		}

		wc := &wsClient{
			conn:   conn,
			client: client,
			send:   make(chan string, 16),
			log: logrus.WithFields(logrus.Fields{
				"client":     client.String(),
				"remoteAddr": remoteAddr(r),
				"transport":  "ws",
			}),
		}

		wc.send <- greeting

		writeLoopDone := make(chan bool)
		defer func() {
			select {
			case <-writeLoopDone:
			case <-time.After(time.Second):
			}

			if err := m.room.Disconnect(ctx, client); err != nil {
				wc.log.WithError(err).Warn("could not disconnect client")
			}

			_ = conn.Close()
		}()

		go wc.writeLoop(writeLoopDone)
		m.webSocketReadLoop(ctx, wc)
	}
}

func (wc *wsClient) writeLoop(done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = wc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-wc.send:
			_ = wc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = wc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, wc.closeReason))
				return
			}

			wc.log.WithField("message", msg).Trace("sending message to client")
			if err := wc.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				wc.log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop treats every text message as one frame
func (m *Mux) webSocketReadLoop(ctx context.Context, wc *wsClient) {
	defer close(wc.send)

	for {
		_, frame, err := wc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				wc.log.WithError(err).Error("could not read message")
			}

			return
		}

		req, err := protocol.ParseRequest(string(frame))
		if err != nil {
			wc.log.WithError(err).Warn("could not parse frame")
			wc.send <- protocol.InvalidFrameMessage
			continue
		}

		result, done, err := m.room.Process(ctx, wc.client, req)
		if err != nil {
			wc.log.WithError(err).Error("could not process move")
			wc.closeReason = err.Error()
			return
		}

		wc.send <- result
		if done {
			wc.closeReason = protocol.GoodbyeMessage
			return
		}
	}
}
