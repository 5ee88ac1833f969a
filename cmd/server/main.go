package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fivecarddraw-server/internal/config"
	"fivecarddraw-server/internal/mux"
	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/internal/tcp"
	"fivecarddraw-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const readTimeout = time.Second * 5
const shutdownTimeout = time.Second * 5

// Version is the server version
var Version = "v0.0.0-dev"

var configFile = flag.String("config", "", "path to the config file, overrides FCD_CONFIG_FILE")

func main() {
	flag.Parse()

	if *configFile != "" {
		if err := config.LoadFile(*configFile); err != nil {
			logrus.WithError(err).Fatal("could not load config")
		}
	}

	setupLogger()
	cfg := config.Instance()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rm := room.New(logrus.StandardLogger(), room.NewIDGenerator(), rng.New(cfg.Deck.Seed))
	rm.Open()
	defer rm.Close()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	// no write timeout, websocket connections are long-lived
	srv := &http.Server{
		Addr:        cfg.HTTP.Addr,
		Handler:     loggingHandler(c.Handler(mux.NewMux(Version, rm))),
		ReadTimeout: readTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return tcp.NewServer(cfg.TCP.Addr, rm).Serve(ctx)
	})

	g.Go(func() error {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}

	logrus.Info("server stopped")
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().HTTP.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
