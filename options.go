package gmbatch

import (
	"log/slog"
	"time"

	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
)

// Options configures connections to GraphicsMagick.
type Options = config.Options

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithGMPath sets the explicit path to the gm binary.
// If not set, gm is searched in PATH.
func WithGMPath(path string) Option {
	return func(o *Options) {
		o.GMPath = path
	}
}

// WithCwd sets the working directory for the gm process.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithEnv provides additional environment variables for the gm process,
// e.g. MAGICK_TMPDIR or OMP_NUM_THREADS.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithOutput sets a callback that receives each line read from gm, with
// stdout and stderr combined. It runs on the goroutine calling Execute.
func WithOutput(fn func(string)) Option {
	return func(o *Options) {
		o.Output = fn
	}
}

// WithTerminateTimeout bounds how long Close waits for gm to exit before
// killing it.
func WithTerminateTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.TerminateTimeout = timeout
	}
}

// WithSkipVersionCheck disables the gm version check.
func WithSkipVersionCheck(skip bool) Option {
	return func(o *Options) {
		o.SkipVersionCheck = skip
	}
}

// WithProcess makes Open bind to an existing engine instead of spawning gm.
func WithProcess(process Process) Option {
	return func(o *Options) {
		o.Process = process
	}
}
