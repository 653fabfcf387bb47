package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"rt-portal-go/internal/app"
	"rt-portal-go/pkg/logger"
)

func newServeCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log.Info("app: starting")

			application, err := app.New(ctx, log)
			if err != nil {
				return err
			}
			return serve(ctx, application, log)
		},
	}
}

// serve runs the server until ctx is cancelled or the listener fails, then
// shuts it down within the configured timeout.
func serve(ctx context.Context, application *app.App, log logger.Logger) error {
	srv := application.HTTPServer()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("app: shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), application.Config().HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http: graceful shutdown failed", "err", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("app: stopped")
	return nil
}
