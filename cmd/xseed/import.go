package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/torrentreconcile/xseed/internal/candidates"
	"github.com/torrentreconcile/xseed/internal/importer"
)

func newImportCommand(flags *globalFlags) *cobra.Command {
	var (
		sourceRoots []string
		targetDir   string
		verifyOnly  bool
		sample      bool
		sampleK     int
		execute     bool
	)

	cmd := &cobra.Command{
		Use:   "import <metainfo...>",
		Short: "Cross-seed one or more .torrent files from local source directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sourceRoots) == 0 {
				return fmt.Errorf("--source is required at least once")
			}
			if targetDir == "" {
				return fmt.Errorf("--target is required")
			}

			idx, err := candidates.BuildIndex(sourceRoots)
			if err != nil {
				return fmt.Errorf("build candidate index: %w", err)
			}
			log.Info().Int("files", idx.Len()).Msg("candidate index built")

			var svc *importer.Service
			if execute {
				client, err := buildClient(flags)
				if err != nil {
					return err
				}
				svc = importer.New(idx, client, buildEffector(flags, cmd.OutOrStdout()))
			} else {
				svc = importer.New(idx, nil, nil)
			}

			absTarget, err := filepath.Abs(targetDir)
			if err != nil {
				return fmt.Errorf("resolve target: %w", err)
			}

			results := svc.ImportBatch(cmd.Context(), args, importer.Options{
				TargetDir:  absTarget,
				VerifyOnly: verifyOnly,
				Sample:     sample,
				SampleK:    sampleK,
			})

			failures := 0
			for _, res := range results {
				if res.Err != nil {
					failures++
					cmd.PrintErrf("%s: %v\n", res.MetainfoPath, res.Err)
					continue
				}
				cmd.Printf("%s: plan with %d step(s)\n", res.MetainfoPath, len(res.Plan))
				if execute {
					if err := svc.Execute(cmd.Context(), res.Plan); err != nil {
						failures++
						cmd.PrintErrf("%s: execute: %v\n", res.MetainfoPath, err)
					}
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d torrent(s) failed", failures, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sourceRoots, "source", nil, "candidate source directory (repeatable)")
	cmd.Flags().StringVar(&targetDir, "target", "", "directory mirror roots are created under")
	cmd.Flags().BoolVar(&verifyOnly, "verify-only", false, "verify and plan without adding torrents to the client")
	cmd.Flags().BoolVar(&sample, "sample", false, "verify only a sampled subset of pieces instead of all of them")
	cmd.Flags().IntVar(&sampleK, "sample-k", 0, "per-path sample size when --sample is set (0 uses the default)")
	cmd.Flags().BoolVar(&execute, "execute", false, "execute the plan against the client and filesystem instead of only printing it")

	return cmd
}
