package protocol

import (
	"io"

	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

// Writer is the sink a request is written to.
type Writer interface {
	io.Writer
	Flush() error
}

// EncodeRequest returns the complete request line, including EOL.
func EncodeRequest(command string, args []string) []byte {
	size := len(command) + len(EOL)
	for _, arg := range args {
		size += len(arg) + 3
	}

	line := make([]byte, 0, size)
	line = append(line, command...)

	for _, arg := range args {
		line = AppendArgument(line, arg)
	}

	return append(line, EOL...)
}

// WriteRequest writes one request line to w and flushes it.
// Failures are reported as *errors.ServiceError.
func WriteRequest(w Writer, command string, args []string) error {
	if _, err := w.Write(EncodeRequest(command, args)); err != nil {
		return &errors.ServiceError{Message: "write request", Err: err}
	}

	if err := w.Flush(); err != nil {
		return &errors.ServiceError{Message: "flush request", Err: err}
	}

	return nil
}
