package main

import (
	"github.com/spf13/cobra"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the gm tool to an MCP client over stdio",
		Long: `Serve a Model Context Protocol tool named "gm" over stdin/stdout.

Every tool call runs on the same gm batch process. Logs are written to
stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.connectionOptions(cmd.ErrOrStderr())

			return gmbatch.WithConnection(cmd.Context(), func(conn gmbatch.Connection) error {
				return gmbatch.ServeMCP(cmd.Context(), conn, opts...)
			}, opts...)
		},
	}
}
