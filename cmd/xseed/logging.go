package main

import (
	"github.com/rs/zerolog/log"

	"github.com/torrentreconcile/xseed/internal/xlog"
)

// setupLogging installs the global zerolog logger for the process, per the
// root command's PersistentPreRunE. A malformed --log-level falls back to
// info rather than aborting the run, since logging misconfiguration
// shouldn't block a cross-seed import.
func setupLogging(level, logFile string) {
	if _, err := xlog.ParseLevelStrict(level); err != nil {
		level = "info"
	}
	xlog.Setup(xlog.Options{
		Level:   level,
		Pretty:  true,
		LogFile: logFile,
	})
	log.Debug().Str("level", level).Str("logFile", logFile).Msg("logging configured")
}
