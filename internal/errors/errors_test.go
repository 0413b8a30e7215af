package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGMNotFoundError(t *testing.T) {
	err := &GMNotFoundError{
		SearchedPaths: []string{"/usr/bin/gm", "/opt/bin/gm"},
	}

	require.Equal(t, "gm binary not found in: [/usr/bin/gm /opt/bin/gm]", err.Error())
	require.True(t, err.IsGMSDKError())
}

func TestServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  *ServiceError
		want string
	}{
		{
			name: "message and cause",
			err:  &ServiceError{Message: "write request", Err: io.ErrClosedPipe},
			want: "gm service: write request: io: read/write on closed pipe",
		},
		{
			name: "message only",
			err:  &ServiceError{Message: "stdout closed"},
			want: "gm service: stdout closed",
		},
		{
			name: "cause only",
			err:  &ServiceError{Err: ErrConnectionClosed},
			want: "gm service: GMConnection is already closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
			require.True(t, tt.err.IsGMSDKError())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := &ServiceError{Message: "read response", Err: io.ErrUnexpectedEOF}

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestGMError_MessageVerbatim(t *testing.T) {
	err := &GMError{Message: "gm identify: Unable to open file (a.png).\n"}

	require.Equal(t, "gm identify: Unable to open file (a.png).\n", err.Error())
	require.True(t, err.IsGMSDKError())

	gmErr, ok := errors.AsType[*GMError](error(err))
	require.True(t, ok)
	require.Same(t, err, gmErr)
}

func TestProcessError_WithUnderlyingError(t *testing.T) {
	root := errors.New("signal: killed")
	err := &ProcessError{
		ExitCode: 9,
		Output:   "ignored when Err is set",
		Err:      root,
	}

	require.Equal(t, "gm process failed (exit 9): signal: killed", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsGMSDKError())
}

func TestProcessError_WithOutputOnly(t *testing.T) {
	err := &ProcessError{
		ExitCode: 1,
		Output:   "gm: unrecognized option",
	}

	require.Equal(t, "gm process failed (exit 1): gm: unrecognized option", err.Error())
	require.NoError(t, err.Unwrap())
}
