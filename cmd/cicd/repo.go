package main

import (
	"fmt"

	"github.com/kinsondigital/reactive/notify"
	"github.com/kinsondigital/reactive/pipeline"
	"github.com/spf13/cobra"
)

func newRepoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repo",
		Short: "Resolve the repository owner and name from the environment",
		Long: fmt.Sprintf("Resolve the repository from %s and %s, falling back to %s.",
			pipeline.EnvRepoOwner, pipeline.EnvRepoName, pipeline.EnvGitHubRepository),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hub := notify.NewHub()
			defer hub.Close()

			info, err := pipeline.NewRepoInfoProducer(hub.RepoInfo()).Produce(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), info.FullName())
			return nil
		},
	}
}
