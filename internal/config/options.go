package config

import (
	"log/slog"
	"time"
)

// DefaultTerminateTimeout is how long Terminate waits for gm to exit after
// its input is closed before killing it.
const DefaultTerminateTimeout = 5 * time.Second

// Options configures connections to GraphicsMagick.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// GMPath is the path to the gm binary. If empty, gm is searched in PATH
	// and common installation directories.
	GMPath string

	// Cwd is the working directory for the gm process.
	// Relative image paths in commands resolve against it.
	Cwd string

	// Env provides additional environment variables for the gm process.
	Env map[string]string

	// Output is called with each line read from gm, stdout and stderr
	// combined, on the goroutine calling Execute.
	Output func(string)

	// TerminateTimeout bounds the graceful shutdown of the gm process.
	// Zero means DefaultTerminateTimeout.
	TerminateTimeout time.Duration

	// SkipVersionCheck disables the gm version check during discovery.
	SkipVersionCheck bool

	// Process is an already running engine to bind to instead of spawning gm.
	Process Process
}
