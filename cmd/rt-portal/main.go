package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"rt-portal-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(log)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Critical("app: command failed", "err", err)
		_ = log.Sync()
		stop()
		os.Exit(1)
	}
	_ = log.Sync()
}

func newRootCmd(log logger.Logger) *cobra.Command {
	serve := newServeCmd(log)

	root := &cobra.Command{
		Use:           "rt-portal",
		Short:         "Neighborhood (RT/RW) community portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newLetterCmd(log), newResidentsCmd(log))
	return root
}
