package main

import (
	"github.com/spf13/cobra"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

func newExecCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- COMMAND [ARG...]",
		Short: "Run a single gm command",
		Long: `Run a single gm command and print its output.

Arguments are passed to gm verbatim. Use "--" so that gm options are not
parsed as gmbatch flags.

Examples:
  gmbatch exec -- identify -format "%wx%h" a.png
  gmbatch exec -- convert in.png -resize 50% out.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.connectionOptions(cmd.ErrOrStderr())

			return gmbatch.WithConnection(cmd.Context(), func(conn gmbatch.Connection) error {
				batch := gmbatch.NewBatchCommand(conn)
				batch.SetOutputConsumer(gmbatch.OutputTo(cmd.OutOrStdout()))
				batch.SetErrorConsumer(gmbatch.ErrorTo(cmd.ErrOrStderr()))

				rc, err := batch.Run(args)
				if err != nil {
					return err
				}

				if rc != 0 {
					return errCommandFailed
				}

				return nil
			}, opts...)
		},
	}
}
