package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/episodeorg"
	"github.com/torrentreconcile/xseed/internal/omdb"
	"github.com/torrentreconcile/xseed/internal/xconfig"
)

func newOrganizeEpisodesCommand(flags *globalFlags) *cobra.Command {
	var baseDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "organize-episodes <file...>",
		Short: "Group single-file episode torrents into per-episode directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseDir == "" {
				return fmt.Errorf("--base-dir is required")
			}

			client, err := buildClient(flags)
			if err != nil {
				return err
			}

			paths := make(map[string]struct{}, len(args))
			for _, p := range args {
				abs, err := filepath.Abs(p)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", p, err)
				}
				paths[abs] = struct{}{}
			}

			svc := episodeorg.New(client)
			if configPath != "" {
				cfg, err := xconfig.Load(configPath)
				if err != nil {
					return err
				}
				if cfg.APIKeys.OMDB != "" {
					svc.TitleLookup = omdb.NewClient(omdb.Config{APIKey: cfg.APIKeys.OMDB})
				}
			}

			outcomes, err := svc.Organize(cmd.Context(), episodeorg.Options{
				BaseDir: baseDir,
				Paths:   paths,
				DryRun:  flags.dryRun,
			})
			if err != nil {
				return err
			}

			failures := 0
			for _, o := range outcomes {
				if !o.Organized {
					failures++
					cmd.PrintErrf("%s: %s\n", o.Path, o.Reason)
					continue
				}
				cmd.Printf("%s -> %s\n", o.Path, o.NewDir)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d file(s) could not be organized", failures, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "directory new per-episode directories are created under")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.toml for OMDB title confirmation (optional)")

	return cmd
}
