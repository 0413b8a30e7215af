package gmbatch

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

// OutputConsumer receives the output of a command that gm ran successfully.
type OutputConsumer interface {
	ConsumeOutput(r io.Reader) error
}

// ErrorConsumer receives the message of a command that gm reported as failed.
type ErrorConsumer interface {
	ConsumeError(r io.Reader) error
}

// OutputConsumerFunc adapts a function to an OutputConsumer.
type OutputConsumerFunc func(r io.Reader) error

// ConsumeOutput implements OutputConsumer.
func (f OutputConsumerFunc) ConsumeOutput(r io.Reader) error { return f(r) }

// ErrorConsumerFunc adapts a function to an ErrorConsumer.
type ErrorConsumerFunc func(r io.Reader) error

// ConsumeError implements ErrorConsumer.
func (f ErrorConsumerFunc) ConsumeError(r io.Reader) error { return f(r) }

// OutputTo returns an OutputConsumer that copies output to w.
func OutputTo(w io.Writer) OutputConsumer {
	return OutputConsumerFunc(func(r io.Reader) error {
		_, err := io.Copy(w, r)

		return err
	})
}

// ErrorTo returns an ErrorConsumer that copies failure messages to w.
func ErrorTo(w io.Writer) ErrorConsumer {
	return ErrorConsumerFunc(func(r io.Reader) error {
		_, err := io.Copy(w, r)

		return err
	})
}

// BatchCommand runs commands that were assembled as a token list, where
// the first token is the gm subcommand and the rest are its arguments.
type BatchCommand struct {
	exec           Executor
	outputConsumer OutputConsumer
	errorConsumer  ErrorConsumer
}

// NewBatchCommand creates a BatchCommand that runs on exec.
func NewBatchCommand(exec Executor) *BatchCommand {
	return &BatchCommand{exec: exec}
}

// SetOutputConsumer registers the consumer for successful output.
func (b *BatchCommand) SetOutputConsumer(c OutputConsumer) {
	b.outputConsumer = c
}

// SetErrorConsumer registers the consumer for failure messages.
// Without one, Run returns gm failures as *GMError.
func (b *BatchCommand) SetErrorConsumer(c ErrorConsumer) {
	b.errorConsumer = c
}

// Run executes tokens and returns 0 when gm reports success.
//
// When gm reports failure and an error consumer is set, the consumer gets
// the message and Run returns 1 with a nil error. Transport failures are
// always returned.
func (b *BatchCommand) Run(tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 1, errors.ErrEmptyCommand
	}

	out, err := b.exec.Execute(tokens[0], tokens[1:]...)
	if err != nil {
		gmErr, ok := stderrors.AsType[*errors.GMError](err)
		if !ok || b.errorConsumer == nil {
			return 1, err
		}

		if consumeErr := b.errorConsumer.ConsumeError(strings.NewReader(gmErr.Message)); consumeErr != nil {
			return 1, fmt.Errorf("consume error: %w", consumeErr)
		}

		return 1, nil
	}

	if b.outputConsumer != nil {
		if consumeErr := b.outputConsumer.ConsumeOutput(strings.NewReader(out)); consumeErr != nil {
			return 1, fmt.Errorf("consume output: %w", consumeErr)
		}
	}

	return 0, nil
}
