package gmbatch

import (
	"context"
	"io"

	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
	"github.com/wagiedev/gm-batch-sdk-go/internal/connection"
	"github.com/wagiedev/gm-batch-sdk-go/internal/subprocess"
)

// Process is the engine a Connection drives. See config.Process.
type Process = config.Process

// Executor runs one gm command and returns its output.
type Executor interface {
	Execute(command string, args ...string) (string, error)
}

// Connection executes GraphicsMagick commands on one gm batch process.
//
// A Connection is not safe for concurrent use. Each call to Execute writes a
// request and blocks until gm's response has been read completely.
//
// Lifecycle: Connections are single-use. After Close(), open a new one.
type Connection interface {
	Executor

	// Close terminates the gm process. Calling Close more than once is a no-op.
	// It always returns nil; termination failures are logged.
	Close() error

	// ID returns the identifier this connection logs under.
	ID() string
}

// Compile-time verification that the internal connection satisfies Connection.
var _ Connection = (*connection.Connection)(nil)

// NewConnection binds a connection to an already running process.
// The connection owns process from then on and terminates it on Close.
func NewConnection(process Process, opts ...Option) (Connection, error) {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	conn, err := connection.New(log, process)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Open spawns "gm batch" and returns a connection to it.
//
// ctx bounds locating and starting gm; it does not limit the lifetime of the
// connection. Returns GMNotFoundError if gm cannot be located, or
// ProcessError if it fails to start.
func Open(ctx context.Context, opts ...Option) (Connection, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	options := applyOptions(opts)
	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	conn, err := connection.Open(ctx, options)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// NewStreamProcess adapts a writer/reader pair into a Process, e.g. to reach
// a gm batch engine over a socket. terminate is called once by the first
// Terminate call and may be nil.
func NewStreamProcess(w io.Writer, r io.Reader, terminate func() error) Process {
	return subprocess.NewStreamProcess(w, r, terminate)
}
