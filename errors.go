package gmbatch

import "github.com/wagiedev/gm-batch-sdk-go/internal/errors"

// Re-export error types from internal package

// GMNotFoundError indicates the gm binary was not found.
type GMNotFoundError = errors.GMNotFoundError

// ServiceError indicates the connection to gm failed. Discard the connection.
type ServiceError = errors.ServiceError

// GMError indicates gm reported the command as failed. The connection remains usable.
type GMError = errors.GMError

// ProcessError indicates the gm process failed to start or exited abnormally.
type ProcessError = errors.ProcessError

// GMSDKError is the base interface for all SDK errors.
type GMSDKError = errors.GMSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrConnectionClosed indicates the connection has been closed and cannot be reused.
	ErrConnectionClosed = errors.ErrConnectionClosed

	// ErrEmptyCommand indicates a command was executed without a name.
	ErrEmptyCommand = errors.ErrEmptyCommand

	// ErrNilProcess indicates a connection was requested for a nil process.
	ErrNilProcess = errors.ErrNilProcess
)
