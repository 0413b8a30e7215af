package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

// errCommandFailed reports that gm rejected a command. Its message has
// already been written to stderr.
var errCommandFailed = errors.New("gm command failed")

type globalFlags struct {
	gmPath string
	cwd    string
	debug  bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "gmbatch",
		Short: "Run GraphicsMagick commands through a persistent gm batch process",
		Long: `gmbatch keeps one "gm batch" process running and sends it commands,
avoiding the cost of starting GraphicsMagick for every operation.

Examples:
  # Print the size of an image
  gmbatch exec -- identify -format "%wx%h" a.png

  # Run a script of commands, one per line
  gmbatch run thumbnails.gm

  # Serve the gm tool to an MCP client over stdio
  gmbatch mcp`,
		Version:       gmbatch.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.gmPath, "gm-path", "", "path to the gm binary (default: search PATH)")
	cmd.PersistentFlags().StringVar(&flags.cwd, "cwd", "", "working directory for the gm process")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log protocol activity to stderr")

	cmd.AddCommand(
		newExecCmd(flags),
		newRunCmd(flags),
		newMCPCmd(flags),
	)

	return cmd
}

// connectionOptions builds SDK options from the global flags.
// Logs go to stderr so they never mix with command output.
func (f *globalFlags) connectionOptions(stderr io.Writer) []gmbatch.Option {
	level := slog.LevelWarn
	if f.debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return []gmbatch.Option{
		gmbatch.WithLogger(log),
		gmbatch.WithGMPath(f.gmPath),
		gmbatch.WithCwd(f.cwd),
	}
}
