package connection

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
	"github.com/wagiedev/gm-batch-sdk-go/internal/protocol"
	"github.com/wagiedev/gm-batch-sdk-go/internal/subprocess"
)

// Connection executes gm commands over a single Process.
//
// State is either open or closed. A closed connection never reopens.
// Close may be called while Execute is blocked on another goroutine.
type Connection struct {
	id      string
	log     *slog.Logger
	process config.Process
	reader  protocol.ResponseReader
	closed  atomic.Bool
}

// New binds a connection to an already running process.
// The connection takes exclusive ownership of process.
func New(log *slog.Logger, process config.Process) (*Connection, error) {
	if process == nil {
		return nil, errors.ErrNilProcess
	}

	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := ulid.Make().String()

	return &Connection{
		id:      id,
		log:     log.With("component", "connection", "connection_id", id),
		process: process,
	}, nil
}

// Open binds a connection to options.Process when set, and otherwise spawns
// a new "gm batch" process.
func Open(ctx context.Context, options *config.Options) (*Connection, error) {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	process := options.Process
	if process == nil {
		gm := subprocess.NewGMProcess(log, options)
		if err := gm.Start(ctx); err != nil {
			return nil, fmt.Errorf("start gm: %w", err)
		}

		process = gm
	}

	return New(log, process)
}

// ID returns the identifier used for this connection in log records.
func (c *Connection) ID() string {
	return c.id
}

// Execute runs one gm command and returns everything gm printed before the
// pass sentinel.
//
// When gm prints the fail sentinel, Execute returns *errors.GMError with
// gm's output as the message and the connection stays usable. Any I/O
// failure, an unexpected end of gm's output, or a closed connection is
// returned as *errors.ServiceError; the connection should then be discarded.
func (c *Connection) Execute(command string, args ...string) (string, error) {
	if c.closed.Load() {
		return "", &errors.ServiceError{Err: errors.ErrConnectionClosed}
	}

	if command == "" {
		return "", errors.ErrEmptyCommand
	}

	c.log.Debug("Executing gm command", "command", command, "arg_count", len(args))

	if err := protocol.WriteRequest(c.process, command, args); err != nil {
		c.log.Error("Failed to send gm command", "command", command, "error", err)

		return "", err
	}

	resp, err := c.reader.Read(c.process)
	if err != nil {
		c.log.Error("Failed to read gm response", "command", command, "error", err)

		return "", err
	}

	if resp.Status == protocol.StatusFail {
		c.log.Debug("gm command failed", "command", command)

		return "", &errors.GMError{Message: resp.Text}
	}

	c.log.Debug("gm command succeeded", "command", command, "output_len", len(resp.Text))

	return resp.Text, nil
}

// Close terminates the process. Later calls are no-ops.
// Termination failures are logged, never returned.
//
// A concurrent Execute blocked on gm returns a *errors.ServiceError once the
// process output ends.
func (c *Connection) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if err := c.process.Terminate(); err != nil {
		c.log.Warn("Failed to terminate gm process", "error", err)
	} else {
		c.log.Debug("Connection closed")
	}

	return nil
}

// IsClosed reports whether Close has been called.
func (c *Connection) IsClosed() bool {
	return c.closed.Load()
}
