package subprocess

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"
	"sync"

	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
)

// StreamProcess implements config.Process over a writer/reader pair.
//
// Output lines may be of any length. A final line without a terminator is
// returned before io.EOF.
type StreamProcess struct {
	w         *bufio.Writer
	r         *bufio.Reader
	terminate func() error

	once    sync.Once
	termErr error
}

// Compile-time verification that StreamProcess implements the Process interface.
var _ config.Process = (*StreamProcess)(nil)

// NewStreamProcess creates a process that writes requests to w and reads
// responses from r. terminate is called once by the first Terminate call;
// it may be nil.
func NewStreamProcess(w io.Writer, r io.Reader, terminate func() error) *StreamProcess {
	return &StreamProcess{
		w:         bufio.NewWriter(w),
		r:         bufio.NewReader(r),
		terminate: terminate,
	}
}

// Write buffers request bytes until Flush.
func (p *StreamProcess) Write(data []byte) (int, error) {
	return p.w.Write(data)
}

// Flush pushes buffered request bytes to the underlying writer.
func (p *StreamProcess) Flush() error {
	return p.w.Flush()
}

// ReadLine returns the next output line without its "\n" or "\r\n" terminator.
func (p *StreamProcess) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}

		return "", err
	}

	return trimEOL(line), nil
}

// Terminate runs the terminate callback once and returns its result on every call.
func (p *StreamProcess) Terminate() error {
	p.once.Do(func() {
		if p.terminate != nil {
			p.termErr = p.terminate()
		}
	})

	return p.termErr
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}
