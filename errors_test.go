package gmbatch

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGMNotFoundError_Creation tests GMNotFoundError creation and formatting.
func TestGMNotFoundError_Creation(t *testing.T) {
	err := &GMNotFoundError{
		SearchedPaths: []string{"$PATH", "/usr/local/bin/gm", "/usr/bin/gm"},
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "gm binary not found")
	require.Contains(t, err.Error(), "$PATH")
	require.Contains(t, err.Error(), "/usr/local/bin/gm")
}

// TestServiceError_Wrapping tests that ServiceError exposes its cause.
func TestServiceError_Wrapping(t *testing.T) {
	err := fmt.Errorf("execute: %w", &ServiceError{Message: "read response", Err: io.ErrUnexpectedEOF})

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	svcErr, ok := errors.AsType[*ServiceError](err)
	require.True(t, ok)
	require.Equal(t, "read response", svcErr.Message)
}

// TestGMError_NotAServiceError tests the two error kinds stay distinct.
func TestGMError_NotAServiceError(t *testing.T) {
	var err error = &GMError{Message: "convert: no such file\n"}

	_, isService := errors.AsType[*ServiceError](err)
	require.False(t, isService)

	gmErr, ok := errors.AsType[*GMError](err)
	require.True(t, ok)
	require.Equal(t, "convert: no such file\n", gmErr.Message)
}

// TestClosedConnectionError tests the closed sentinel is reachable through ServiceError.
func TestClosedConnectionError(t *testing.T) {
	err := &ServiceError{Err: ErrConnectionClosed}

	require.ErrorIs(t, err, ErrConnectionClosed)
}

// TestErrorTypes_ImplementGMSDKError tests the marker interface.
func TestErrorTypes_ImplementGMSDKError(t *testing.T) {
	errs := []error{
		&GMNotFoundError{},
		&ServiceError{},
		&GMError{},
		&ProcessError{},
	}

	for _, err := range errs {
		sdkErr, ok := errors.AsType[GMSDKError](err)
		require.True(t, ok, "%T", err)
		require.True(t, sdkErr.IsGMSDKError())
	}
}
