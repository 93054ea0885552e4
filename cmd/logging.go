package cmd

import (
	"log/slog"
	"os"

	"github.com/philipparndt/goobj/pkg/mesh"
)

// logger is shared by every command; it stays silent until setupLogging runs
var logger = slog.New(slog.DiscardHandler)

// setupLogging sends structured logs to stderr, at debug level when verbose
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mesh.SetLogger(logger)
}
