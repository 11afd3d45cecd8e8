package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var (
		configPath string
		watch      bool
		debounce   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve build info from a JSON or YAML file",
		Long: "Resolve build info from a JSON or YAML file and push it to subscribers. " +
			"With --watch, keep pushing changes until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			hub := notify.NewHub()
			defer hub.Close()

			out := cmd.OutOrStdout()
			_, err := hub.BuildInfo().Subscribe(reactive.NewReactor(
				func(info notify.BuildInfo) { fmt.Fprintf(out, "build info: %s\n", info) },
				nil,
				func(err error) { logrus.WithError(err).Warn("build info rejected") },
			))
			if err != nil {
				return err
			}

			feed := reactive.NewFeed[notify.BuildInfo](reactive.NewFileWatcher(configPath), hub.BuildInfo()).
				Codec(reactive.CodecForPath(configPath)).
				Debounce(debounce).
				EndOnStop()

			if err := feed.Start(ctx); err != nil {
				return fmt.Errorf("resolve build info: %w", err)
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runFeed(ctx, feed)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the build info file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep watching the file for changes")
	cmd.Flags().DurationVar(&debounce, "debounce", reactive.DefaultDebounce, "Debounce window for file changes")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runFeed[T reactive.Validator](ctx context.Context, feed *reactive.Feed[T]) error {
	if err := feed.Run(ctx); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
