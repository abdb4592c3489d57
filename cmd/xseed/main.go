package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every subcommand that
// touches a torrent client, mirroring the teacher's pattern of threading
// plain option structs through RunE rather than reaching for package-level
// state.
type globalFlags struct {
	clientBinary string
	dryRun       bool
	logLevel     string
	logFile      string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "xseed",
		Short:         "Cross-seed import and library reconciliation for torrent clients",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(flags.logLevel, flags.logFile)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.clientBinary, "client-binary", "", "path to the torrent client CLI binary")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "narrate filesystem and client mutations instead of performing them")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "also write logs to this file, rotated")

	cmd.AddCommand(
		newImportCommand(flags),
		newMoveCommand(flags),
		newFindCommand(flags),
		newUpdatePathsCommand(flags),
		newOrganizeEpisodesCommand(flags),
		newSelfUpdateCommand(),
	)

	return cmd
}
