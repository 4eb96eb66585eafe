// Package debug controls the generator's log verbosity.
package debug

import (
	"log/slog"
	"os"
	"strings"
)

// EnvVar enables debug logging for a whole invocation, independent of any
// CLI flag.
const EnvVar = "CLICKSTART_DEBUG"

// Enabled reports whether the debug environment switch is set to a truthy
// value.
func Enabled() bool {
	switch strings.ToLower(os.Getenv(EnvVar)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// NewLogger builds the process logger at the level implied by the verbose
// flag and the environment switch.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || Enabled() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
