package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
	"github.com/kinsondigital/reactive/pipeline"
	"github.com/kinsondigital/reactive/pkg/kubernetes"
	"github.com/spf13/cobra"
)

// dryRunSender prints announcements instead of posting them.
type dryRunSender struct {
	out io.Writer
}

func (s dryRunSender) SendTweet(_ context.Context, _ notify.Secrets, message string) error {
	_, err := fmt.Fprintf(s.out, "announcement:\n%s\n", message)
	return err
}

type announceOptions struct {
	configPath string
	version    string
	kubeconfig string
	namespace  string
	secretName string
	skip       bool
	timeout    time.Duration
}

// defaultAnnounceTimeout bounds how long announce waits for each source.
const defaultAnnounceTimeout = 30 * time.Second

func newAnnounceCmd(kubeClient kubeClientFunc) *cobra.Command {
	var opts announceOptions

	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Announce a release using build info from a file and credentials from a Kubernetes Secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnnounce(cmd, kubeClient, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the build info file")
	cmd.Flags().StringVar(&opts.version, "version", "", "Released version, e.g. v1.2.3")
	cmd.Flags().StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to kubeconfig (empty for in-cluster)")
	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "default", "Namespace of the credentials Secret")
	cmd.Flags().StringVar(&opts.secretName, "secret", "release-announce", "Name of the credentials Secret")
	cmd.Flags().BoolVar(&opts.skip, "skip", false, "Skip the announcement")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultAnnounceTimeout,
		"How long to wait for the build info file and the credentials Secret")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func runAnnounce(cmd *cobra.Command, kubeClient kubeClientFunc, opts announceOptions) error {
	if opts.timeout <= 0 {
		return fmt.Errorf("invalid --timeout %s: must be positive", opts.timeout)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub()
	defer hub.Close()

	announcer, err := pipeline.NewAnnouncer(
		dryRunSender{out: cmd.OutOrStdout()},
		hub.BuildInfo(), hub.Secrets(), hub.SkipTweet(),
	)
	if err != nil {
		return err
	}
	defer announcer.Dispose()

	hub.SkipTweet().Push(opts.skip)

	builds := reactive.NewFeed[notify.BuildInfo](reactive.NewFileWatcher(opts.configPath), hub.BuildInfo()).
		Codec(reactive.CodecForPath(opts.configPath)).
		StartupTimeout(opts.timeout)
	if err := builds.Start(ctx); err != nil {
		return fmt.Errorf("resolve build info: %w", err)
	}

	if !opts.skip {
		client, err := kubeClient(opts.kubeconfig)
		if err != nil {
			return err
		}
		secrets := reactive.NewFeed[notify.Secrets](
			kubernetes.NewSecretsWatcher(client, opts.namespace, opts.secretName),
			hub.Secrets(),
		).StartupTimeout(opts.timeout)
		if err := secrets.Start(ctx); err != nil {
			return fmt.Errorf("resolve announcement secrets: %w", err)
		}
	}

	sent, err := announcer.Announce(ctx, opts.version)
	if err != nil {
		return err
	}
	if !sent {
		fmt.Fprintln(cmd.OutOrStdout(), "announcement skipped")
	}
	return nil
}
