package gmbatch

import (
	"context"
	"fmt"
)

// WithConnection manages connection lifecycle with automatic cleanup.
//
// This helper opens a connection with the provided options, executes the
// callback function, and closes the connection when done. If the callback
// returns an error, it is returned to the caller.
//
// Example usage:
//
//	err := gmbatch.WithConnection(ctx, func(conn gmbatch.Connection) error {
//	    out, err := conn.Execute("identify", "a.png")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(out)
//	    return nil
//	},
//	    gmbatch.WithLogger(log),
//	)
func WithConnection(ctx context.Context, fn func(Connection) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	conn, err := Open(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to open connection: %w", err)
	}

	defer conn.Close()

	return fn(conn)
}
