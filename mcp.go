package gmbatch

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/gm-batch-sdk-go/internal/mcp"
)

// MCPToolName is the name of the tool NewMCPServer registers.
const MCPToolName = internalmcp.ToolName

// NewMCPServer returns an MCP server exposing exec as the "gm" tool.
//
// Tool calls are serialized, so a single Connection can back the server.
// Commands gm reports as failed become tool error results.
func NewMCPServer(exec Executor, opts ...Option) *mcp.Server {
	options := applyOptions(opts)

	return internalmcp.NewToolServer(options.Logger, exec).Server("gmbatch", Version)
}

// ServeMCP serves the "gm" tool over stdin/stdout until ctx is done or the
// client disconnects.
func ServeMCP(ctx context.Context, exec Executor, opts ...Option) error {
	options := applyOptions(opts)

	return internalmcp.NewToolServer(options.Logger, exec).Run(ctx, "gmbatch", Version)
}
