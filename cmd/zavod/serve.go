// Serve command: runs the knowledge-base HTTP server until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ShalunBdk/ZavodHelper/internal/httpapi"
	"github.com/ShalunBdk/ZavodHelper/internal/sqlite"
	"github.com/ShalunBdk/ZavodHelper/pkg/zavod"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// termination signal.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the knowledge-base HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cfg.LogLevel)

		store, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := os.MkdirAll(cfg.Uploads(), 0755); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: httpapi.New(cfg, store, log),
		}

		errc := make(chan error, 1)
		go func() {
			log.Info().
				Str("addr", cfg.Addr()).
				Str("data_dir", cfg.DataDir).
				Str("version", zavod.Version).
				Msg("server listening")
			errc <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errc:
			return err
		case sig := <-stop:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(lvl)
}
