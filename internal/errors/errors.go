package errors

import (
	"errors"
	"fmt"
)

// GMSDKError is the base interface for all SDK errors.
type GMSDKError interface {
	error
	IsGMSDKError() bool
}

// Compile-time verification that all error types implement GMSDKError.
var (
	_ GMSDKError = (*GMNotFoundError)(nil)
	_ GMSDKError = (*ServiceError)(nil)
	_ GMSDKError = (*GMError)(nil)
	_ GMSDKError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrConnectionClosed indicates the connection has been closed and cannot be reused.
	ErrConnectionClosed = errors.New("GMConnection is already closed")

	// ErrEmptyCommand indicates an execute call was made without a command name.
	ErrEmptyCommand = errors.New("command name is empty")

	// ErrNilProcess indicates a connection was requested for a nil process.
	ErrNilProcess = errors.New("process is nil")

	// ErrProcessNotStarted indicates the gm process has not been started.
	ErrProcessNotStarted = errors.New("gm process not started")
)

// GMNotFoundError indicates the gm binary was not found.
type GMNotFoundError struct {
	SearchedPaths []string
}

func (e *GMNotFoundError) Error() string {
	return fmt.Sprintf("gm binary not found in: %v", e.SearchedPaths)
}

// IsGMSDKError implements GMSDKError.
func (e *GMNotFoundError) IsGMSDKError() bool { return true }

// ServiceError indicates the connection to the gm process failed.
// The connection should be discarded after receiving one.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("gm service: %s: %v", e.Message, e.Err)
	case e.Message != "":
		return "gm service: " + e.Message
	default:
		return fmt.Sprintf("gm service: %v", e.Err)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsGMSDKError implements GMSDKError.
func (e *ServiceError) IsGMSDKError() bool { return true }

// GMError carries the output GraphicsMagick printed before reporting failure.
// Message is passed through verbatim.
type GMError struct {
	Message string
}

func (e *GMError) Error() string {
	return e.Message
}

// IsGMSDKError implements GMSDKError.
func (e *GMError) IsGMSDKError() bool { return true }

// ProcessError indicates the gm process could not be started or exited abnormally.
type ProcessError struct {
	ExitCode int
	// Output holds the last lines gm printed before exiting.
	Output string
	Err    error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gm process failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("gm process failed (exit %d): %s", e.ExitCode, e.Output)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsGMSDKError implements GMSDKError.
func (e *ProcessError) IsGMSDKError() bool { return true }
