package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/wagiedev/gm-batch-sdk-go/internal/cli"
	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

// outputTailLines is how many recent output lines are kept for error reporting.
const outputTailLines = 20

// GMProcess implements config.Process by spawning "gm batch".
//
// gm prints command failures on stderr and the sentinels on stdout, so both
// are attached to one pipe and read as a single stream in write order.
type GMProcess struct {
	log     *slog.Logger
	options *config.Options
	gmPath  string
	args    []string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	output  *os.File
	stream  *StreamProcess

	tailMu sync.Mutex
	tail   []string
}

// Compile-time verification that GMProcess implements the Process interface.
var _ config.Process = (*GMProcess)(nil)

// NewGMProcess creates a gm process. Call Start to spawn it.
func NewGMProcess(log *slog.Logger, options *config.Options) *GMProcess {
	return &GMProcess{
		log:     log.With("component", "gm_process"),
		options: options,
	}
}

// Start discovers the gm binary and spawns it in batch mode.
//
// ctx bounds discovery only. The process lives until Terminate is called.
//
// Returns GMNotFoundError if gm cannot be located, or ProcessError if the
// process fails to start.
func (p *GMProcess) Start(ctx context.Context) error {
	p.log.Info("Starting gm batch process")

	discoverer := cli.NewDiscoverer(&cli.Config{
		GMPath:           p.options.GMPath,
		SkipVersionCheck: p.options.SkipVersionCheck,
		Logger:           p.log,
	})

	gmPath, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover gm: %w", err)
	}

	p.gmPath = gmPath
	p.args = cli.BuildArgs()
	p.log.Debug("Built command arguments", "args", p.args)

	//nolint:gosec // G204: the binary path comes from discovery
	cmd := exec.Command(p.gmPath, p.args...)
	cmd.Dir = p.options.Cwd
	cmd.Env = cli.BuildEnvironment(p.options)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.ProcessError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		return &errors.ProcessError{Err: fmt.Errorf("output pipe: %w", err)}
	}

	// The same *os.File for both makes the child inherit one descriptor.
	cmd.Stdout = outW
	cmd.Stderr = outW

	err = cmd.Start()

	// The child holds its own copy; keeping ours open would hide EOF.
	_ = outW.Close()

	if err != nil {
		_ = outR.Close()
		p.log.Error("Failed to start gm process", "error", err)

		return &errors.ProcessError{Err: fmt.Errorf("start process: %w", err)}
	}

	p.cmd = cmd
	p.stdin = stdin
	p.output = outR
	p.stream = NewStreamProcess(stdin, outR, p.shutdown)

	p.log.Info("gm batch process started", "pid", cmd.Process.Pid)

	return nil
}

// Write buffers request bytes for gm's stdin.
func (p *GMProcess) Write(data []byte) (int, error) {
	if p.stream == nil {
		return 0, errors.ErrProcessNotStarted
	}

	return p.stream.Write(data)
}

// Flush sends buffered request bytes to gm.
func (p *GMProcess) Flush() error {
	if p.stream == nil {
		return errors.ErrProcessNotStarted
	}

	return p.stream.Flush()
}

// ReadLine reads the next line gm printed on stdout or stderr.
func (p *GMProcess) ReadLine() (string, error) {
	if p.stream == nil {
		return "", errors.ErrProcessNotStarted
	}

	line, err := p.stream.ReadLine()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			p.log.Debug("gm output closed", "last_output", p.Output())
		}

		return line, err
	}

	p.record(line)

	if p.options.Output != nil {
		p.options.Output(line)
	}

	return line, nil
}

// Terminate closes gm's stdin and waits for it to exit, killing it if it
// does not exit within the configured timeout. It's safe to call Terminate
// multiple times or before Start.
func (p *GMProcess) Terminate() error {
	if p.stream == nil {
		return nil
	}

	return p.stream.Terminate()
}

// Output returns the most recent lines gm printed, oldest first.
func (p *GMProcess) Output() string {
	p.tailMu.Lock()
	defer p.tailMu.Unlock()

	return strings.Join(p.tail, "\n")
}

func (p *GMProcess) record(line string) {
	p.tailMu.Lock()
	defer p.tailMu.Unlock()

	if len(p.tail) == outputTailLines {
		p.tail = append(p.tail[:0], p.tail[1:]...)
	}

	p.tail = append(p.tail, line)
}

func (p *GMProcess) shutdown() error {
	pid := p.cmd.Process.Pid
	p.log.Debug("Terminating gm process", "pid", pid)

	// gm batch exits on its own once stdin reaches EOF.
	if err := p.stdin.Close(); err != nil {
		p.log.Debug("Failed to close gm stdin", "error", err)
	}

	done := make(chan error, 1)

	go func() {
		done <- p.cmd.Wait()
	}()

	defer func() {
		if err := p.output.Close(); err != nil {
			p.log.Debug("Failed to close gm output", "error", err)
		}
	}()

	timeout := p.options.TerminateTimeout
	if timeout <= 0 {
		timeout = config.DefaultTerminateTimeout
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			exitCode := -1
			if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
				exitCode = exitErr.ExitCode()
			}

			p.log.Warn("gm process exited with error", "pid", pid, "exit_code", exitCode)

			return &errors.ProcessError{ExitCode: exitCode, Output: p.Output(), Err: err}
		}

		p.log.Debug("gm process exited", "pid", pid)

		return nil

	case <-timer.C:
		p.log.Warn("gm process did not exit after stdin was closed, killing it", "pid", pid)

		if err := p.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("kill gm process (pid %d): %w", pid, err)
		}

		<-done

		return nil
	}
}
