//go:build !windows

package protocol

// EOL terminates request lines and accumulated response lines.
const EOL = "\n"
