package main

import (
	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/xfind"
)

func newFindCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "find <path>",
		Short: "List which client torrents are seeded from a given file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(flags)
			if err != nil {
				return err
			}

			found, err := xfind.Find(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			for _, t := range found {
				cmd.Printf("%s\t%s\t%s\n", t.ID, t.Name, t.BasePath)
			}
			return nil
		},
	}
}
