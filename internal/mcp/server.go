package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

// ToolName is the name of the registered tool.
const ToolName = "gm"

// Executor runs one gm command.
type Executor interface {
	Execute(command string, args ...string) (string, error)
}

type executeInput struct {
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
}

// ToolServer serializes tool calls onto one Executor.
type ToolServer struct {
	log  *slog.Logger
	mu   sync.Mutex
	exec Executor
}

// NewToolServer creates a tool server backed by exec.
func NewToolServer(log *slog.Logger, exec Executor) *ToolServer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &ToolServer{
		log:  log.With("component", "mcp_tool_server"),
		exec: exec,
	}
}

// Server builds an MCP server with the gm tool registered.
func (s *ToolServer) Server(name, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	server.AddTool(NewTool(), s.Handle)

	return server
}

// Run serves the gm tool over stdin/stdout until ctx is done or the client disconnects.
func (s *ToolServer) Run(ctx context.Context, name, version string) error {
	s.log.Info("Serving gm tool over stdio")

	return s.Server(name, version).Run(ctx, &mcp.StdioTransport{})
}

// Handle executes one tool call.
func (s *ToolServer) Handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var input executeInput

	if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
			//nolint:nilerr // Invalid input is reported to the caller as a tool error
			return ErrorResult("invalid arguments: " + err.Error()), nil
		}
	}

	if input.Command == "" {
		return ErrorResult("command is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("Tool call", "command", input.Command, "arg_count", len(input.Arguments))

	out, err := s.exec.Execute(input.Command, input.Arguments...)
	if err != nil {
		if gmErr, ok := stderrors.AsType[*errors.GMError](err); ok {
			return ErrorResult(gmErr.Message), nil
		}

		return nil, fmt.Errorf("execute %s: %w", input.Command, err)
	}

	return TextResult(out), nil
}

// InputSchema describes the gm tool input.
func InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"command": {
				Type:        "string",
				Description: "gm subcommand, e.g. convert, identify, mogrify",
			},
			"arguments": {
				Type:        "array",
				Description: "Arguments passed to the subcommand, in order",
				Items:       &jsonschema.Schema{Type: "string"},
			},
		},
		Required: []string{"command"},
	}
}

// NewTool creates the gm tool definition.
func NewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolName,
		Description: "Run a GraphicsMagick command through a persistent gm batch process and return its output.",
		InputSchema: InputSchema(),
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}
