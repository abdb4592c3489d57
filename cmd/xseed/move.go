package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/mover"
	"github.com/torrentreconcile/xseed/internal/moveplan"
)

func newMoveCommand(flags *globalFlags) *cobra.Command {
	var (
		symlinkFarms []string
		strategyFlag string
	)

	cmd := &cobra.Command{
		Use:   "move <source> <target>",
		Short: "Relocate a file or directory while keeping the client and any symlink farm consistent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := parseStrategy(strategyFlag)
			if err != nil {
				return err
			}

			client, err := buildClient(flags)
			if err != nil {
				return err
			}
			svc := mover.New(client, buildEffector(flags, cmd.OutOrStdout()))

			res, err := svc.Move(cmd.Context(), args[0], args[1], mover.Options{
				SymlinkFarmRoots: symlinkFarms,
				Strategy:         strategy,
			})
			if err != nil {
				return err
			}

			cmd.Printf("moved %d torrent(s), %d symlink(s) updated\n", len(res.Collected.Selected), len(res.Collected.Symlinks))
			if res.UsedCopyFallback {
				cmd.Println("rename crossed filesystems; completed via copy-and-unlink")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&symlinkFarms, "symlink-dir", nil, "directory with symlinks to update (repeatable)")
	cmd.Flags().StringVar(&strategyFlag, "strategy", "rename", "relocation strategy: rename or copy-and-unlink")

	return cmd
}

func parseStrategy(s string) (moveplan.Strategy, error) {
	switch s {
	case "rename":
		return moveplan.Rename, nil
	case "copy-and-unlink":
		return moveplan.CopyAndUnlink, nil
	default:
		return 0, fmt.Errorf("unrecognized strategy %q (want rename or copy-and-unlink)", s)
	}
}
