package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"fivecarddraw-server/pkg/protocol"

	"github.com/sirupsen/logrus"
)

// ErrConnectionClosed is returned when the server closes the connection
var ErrConnectionClosed = errors.New("connection closed by the server")

// Config configures the terminal client
type Config struct {
	Addr   string
	In     io.Reader
	Out    io.Writer
	Prompt bool
}

// Run connects to the server and relays commands from In until the player
// exits or In is exhausted
func Run(ctx context.Context, cfg Config) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	log := logrus.WithField("addr", cfg.Addr)
	log.Debug("connected")

	frames := protocol.NewFrameScanner(conn)
	readResponse := func() (string, error) {
		if !frames.Scan() {
			if err := frames.Err(); err != nil {
				return "", err
			}

			return "", ErrConnectionClosed
		}

		return frames.Text(), nil
	}

	greeting, err := readResponse()
	if err != nil {
		return err
	}
	fmt.Fprintln(cfg.Out, greeting)

	session := &protocol.Session{}
	lines := bufio.NewScanner(cfg.In)
	for {
		if cfg.Prompt {
			fmt.Fprint(cfg.Out, "> ")
		}

		if !lines.Scan() {
			return lines.Err()
		}

		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}

		req, err := protocol.ParseCommand(line, session.GameID, session.PlayerID)
		if err != nil {
			log.WithError(err).Debug("invalid command")
			fmt.Fprintln(cfg.Out, "Invalid command! Available commands: JOIN, FOLD, CALL, STATUS, EXIT, EXCHANGE [cards], RAISE amount, NEW_GAME players,ante")
			continue
		}

		if err := protocol.WriteFrame(conn, req.Frame()); err != nil {
			return err
		}

		response, err := readResponse()
		if err != nil {
			return err
		}
		fmt.Fprintln(cfg.Out, response)

		if session.Observe(response) {
			return nil
		}
	}
}
