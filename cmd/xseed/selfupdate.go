package main

import (
	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/buildinfo"
	"github.com/torrentreconcile/xseed/internal/update"
)

func newSelfUpdateCommand() *cobra.Command {
	var repository string

	cmd := &cobra.Command{
		Use:   "selfupdate",
		Short: "Check for and install a newer release of this binary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			updater := update.NewUpdater(update.Config{
				Repository: repository,
				Version:    buildinfo.Version,
			})

			updated, err := updater.Run(cmd.Context())
			if err != nil {
				return err
			}
			if updated {
				cmd.Println("updated to the latest release; restart to use it")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repository, "repository", "torrentreconcile/xseed", "GitHub owner/repo slug to check for releases")
	return cmd
}
