// Package mcp exposes a gm connection as a Model Context Protocol tool.
//
// The server registers a single tool, "gm", that runs one GraphicsMagick
// command and returns its output as text. Commands reported as failed by
// gm come back as tool error results; transport failures are returned as
// handler errors.
package mcp
