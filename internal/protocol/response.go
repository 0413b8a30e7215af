package protocol

import (
	"bytes"
	stderrors "errors"
	"io"

	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

// LineReader yields one line at a time without its terminator.
// It returns io.EOF once the stream is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ResponseReader accumulates response lines until a sentinel is seen.
// The zero value is ready to use. Its buffer is reused across reads.
type ResponseReader struct {
	buf bytes.Buffer
}

// Read consumes lines from src up to and including the next sentinel.
//
// End of stream before a sentinel and read failures are returned as
// *errors.ServiceError; the accumulated text is kept in the message.
func (r *ResponseReader) Read(src LineReader) (Response, error) {
	r.buf.Reset()

	for {
		line, err := src.ReadLine()
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				return Response{}, &errors.ServiceError{
					Message: "input from GraphicsMagick was closed unexpectedly after receiving: " + r.output(),
					Err:     io.ErrUnexpectedEOF,
				}
			}

			return Response{}, &errors.ServiceError{Message: "read response", Err: err}
		}

		switch line {
		case PassToken:
			return Response{Status: StatusPass, Text: r.output()}, nil
		case FailToken:
			return Response{Status: StatusFail, Text: r.output()}, nil
		}

		r.buf.WriteString(line)
		r.buf.WriteString(EOL)
	}
}

// Cap reports the capacity currently held by the buffer.
func (r *ResponseReader) Cap() int {
	return r.buf.Cap()
}

// output copies out the accumulated text and drops an oversized buffer.
func (r *ResponseReader) output() string {
	out := r.buf.String()

	if r.buf.Cap() > NormalBufferSize {
		r.buf = bytes.Buffer{}
	}

	return out
}
