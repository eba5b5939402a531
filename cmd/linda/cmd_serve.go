package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anddsdev/linda/config"
	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/server"
	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "path to an optional YAML config override")
}

var serveConfigFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP frontend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

		cfg, err := config.NewConfig(serveConfigFile)
		if err != nil {
			return err
		}

		space, err := tuplespace.New(cfg.Dir)
		if err != nil {
			return err
		}
		space = space.WithLogger(log.With().Str("component", "tuplespace").Logger())
		defer space.Close()

		store, err := audit.Open(cfg.Audit.DSN)
		if err != nil {
			return err
		}
		defer store.Close()

		httpServer := server.NewServer(cfg, space, store, log.With().Str("component", "server").Logger())

		srv := &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      httpServer.Handler(),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		}

		go func() {
			log.Info().Str("addr", cfg.HTTP.Addr).Str("dir", cfg.Dir).Msg("starting server")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("server error")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		log.Info().Msg("server exited cleanly")
		return nil
	},
}
