package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"fivecarddraw-server/internal/client"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type cli struct {
	Addr     string `kong:"default='localhost:8080',help='TCP address of the server'"`
	LogLevel string `kong:"default='warn',help='Log level'"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("fivecarddraw-client"),
		kong.Description("Terminal client for the five-card draw server"),
		kong.UsageOnError(),
	)

	level, err := logrus.ParseLevel(c.LogLevel)
	kctx.FatalIfErrorf(err)
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := client.Config{
		Addr:   strings.TrimSpace(c.Addr),
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: term.IsTerminal(int(os.Stdin.Fd())),
	}

	if err := client.Run(ctx, cfg); err != nil {
		kctx.FatalIfErrorf(err)
	}
}
