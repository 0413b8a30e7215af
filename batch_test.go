package gmbatch_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

type fakeExecutor struct {
	command string
	args    []string
	output  string
	err     error
}

func (f *fakeExecutor) Execute(command string, args ...string) (string, error) {
	f.command = command
	f.args = args

	return f.output, f.err
}

func TestBatchCommand_SuccessToOutputConsumer(t *testing.T) {
	exec := &fakeExecutor{output: "100x100\n"}

	var out bytes.Buffer

	cmd := gmbatch.NewBatchCommand(exec)
	cmd.SetOutputConsumer(gmbatch.OutputTo(&out))

	rc, err := cmd.Run([]string{"identify", "-format", "%wx%h", "a.png"})
	require.NoError(t, err)
	require.Zero(t, rc)
	require.Equal(t, "100x100\n", out.String())
	require.Equal(t, "identify", exec.command)
	require.Equal(t, []string{"-format", "%wx%h", "a.png"}, exec.args)
}

func TestBatchCommand_SuccessWithoutConsumer(t *testing.T) {
	cmd := gmbatch.NewBatchCommand(&fakeExecutor{output: "ignored"})

	rc, err := cmd.Run([]string{"convert", "in.png", "out.png"})
	require.NoError(t, err)
	require.Zero(t, rc)
}

func TestBatchCommand_FailureToErrorConsumer(t *testing.T) {
	exec := &fakeExecutor{err: &gmbatch.GMError{Message: "boom\n"}}

	var out, errOut bytes.Buffer

	cmd := gmbatch.NewBatchCommand(exec)
	cmd.SetOutputConsumer(gmbatch.OutputTo(&out))
	cmd.SetErrorConsumer(gmbatch.ErrorTo(&errOut))

	rc, err := cmd.Run([]string{"convert", "missing.png", "out.png"})
	require.NoError(t, err)
	require.NotZero(t, rc)
	require.Equal(t, "boom\n", errOut.String())
	require.Zero(t, out.Len())
}

func TestBatchCommand_FailureWithoutErrorConsumer(t *testing.T) {
	gmErr := &gmbatch.GMError{Message: "boom\n"}
	cmd := gmbatch.NewBatchCommand(&fakeExecutor{err: gmErr})

	rc, err := cmd.Run([]string{"convert", "missing.png", "out.png"})
	require.NotZero(t, rc)
	require.Same(t, gmErr, err)
}

func TestBatchCommand_TransportErrorAlwaysReturned(t *testing.T) {
	svcErr := &gmbatch.ServiceError{Message: "read response", Err: io.ErrUnexpectedEOF}

	consumed := false

	cmd := gmbatch.NewBatchCommand(&fakeExecutor{err: svcErr})
	cmd.SetErrorConsumer(gmbatch.ErrorConsumerFunc(func(io.Reader) error {
		consumed = true

		return nil
	}))

	rc, err := cmd.Run([]string{"identify", "a.png"})
	require.NotZero(t, rc)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.False(t, consumed)
}

func TestBatchCommand_ConsumerFailure(t *testing.T) {
	root := errors.New("disk full")

	cmd := gmbatch.NewBatchCommand(&fakeExecutor{output: "data"})
	cmd.SetOutputConsumer(gmbatch.OutputConsumerFunc(func(io.Reader) error {
		return root
	}))

	rc, err := cmd.Run([]string{"identify", "a.png"})
	require.NotZero(t, rc)
	require.ErrorIs(t, err, root)
}

func TestBatchCommand_EmptyTokens(t *testing.T) {
	exec := &fakeExecutor{}

	rc, err := gmbatch.NewBatchCommand(exec).Run(nil)
	require.NotZero(t, rc)
	require.ErrorIs(t, err, gmbatch.ErrEmptyCommand)
	require.Empty(t, exec.command)
}

func TestBatchCommand_OverConnection(t *testing.T) {
	process, _ := newPipeEngine(t, identifyEngine)

	conn, err := gmbatch.NewConnection(process)
	require.NoError(t, err)

	defer conn.Close()

	var out, errOut bytes.Buffer

	cmd := gmbatch.NewBatchCommand(conn)
	cmd.SetOutputConsumer(gmbatch.OutputTo(&out))
	cmd.SetErrorConsumer(gmbatch.ErrorTo(&errOut))

	rc, err := cmd.Run([]string{"identify", "-format", "%wx%h", "a.png"})
	require.NoError(t, err)
	require.Zero(t, rc)
	require.Equal(t, "100x100\n", out.String())

	rc, err = cmd.Run([]string{"identify", "missing.png"})
	require.NoError(t, err)
	require.Equal(t, 1, rc)
	require.Equal(t, "gm identify: Unable to open file.\n", errOut.String())
}
