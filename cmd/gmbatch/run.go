package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run gm commands from a file or stdin",
		Long: `Run gm commands read one per line from FILE, or stdin when FILE is
omitted or "-". All commands share one gm process.

Tokens are separated by whitespace. Wrap a token in double quotes to keep
spaces, and write a literal quote inside it as "". Blank lines and lines
starting with # are ignored.

Example script:
  # make thumbnails
  convert "holiday photo.jpg" -thumbnail 200x200 thumb1.jpg
  convert b.png -thumbnail 200x200 thumb2.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()

			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()

				in = f
			}

			opts := flags.connectionOptions(cmd.ErrOrStderr())

			return gmbatch.WithConnection(cmd.Context(), func(conn gmbatch.Connection) error {
				return runScript(conn, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), keepGoing)
			}, opts...)
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after a command fails")

	return cmd
}

// runScript executes each command line in r on exec. It stops at the first
// failed command unless keepGoing is set, and always stops on a transport
// error.
func runScript(exec gmbatch.Executor, r io.Reader, stdout, stderr io.Writer, keepGoing bool) error {
	batch := gmbatch.NewBatchCommand(exec)
	batch.SetOutputConsumer(gmbatch.OutputTo(stdout))
	batch.SetErrorConsumer(gmbatch.ErrorTo(stderr))

	failed := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++

		tokens, err := splitCommandLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if len(tokens) == 0 {
			continue
		}

		rc, err := batch.Run(tokens)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if rc != 0 {
			failed = true

			if !keepGoing {
				return errCommandFailed
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if failed {
		return errCommandFailed
	}

	return nil
}
