package main

import (
	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/updatepaths"
)

func newUpdatePathsCommand(flags *globalFlags) *cobra.Command {
	var symlinkFarms []string

	cmd := &cobra.Command{
		Use:   "update-paths <source> <target>",
		Short: "Remap client base paths and symlink-farm targets after a tree moved out of band",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(flags)
			if err != nil {
				return err
			}

			svc := updatepaths.New(client, buildEffector(flags, cmd.OutOrStdout()))
			result, err := svc.Run(cmd.Context(), updatepaths.Options{
				Source:         args[0],
				Target:         args[1],
				SymlinkFarmDir: symlinkFarms,
			})
			if err != nil {
				return err
			}

			cmd.Printf("updated %d torrent(s), %d symlink(s)\n", result.TorrentsUpdated, result.SymlinksUpdated)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&symlinkFarms, "symlink-dir", nil, "directory with symlinks to update (repeatable)")

	return cmd
}
