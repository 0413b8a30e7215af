// Package config provides configuration types for the GraphicsMagick batch SDK.
package config

import "io"

// Process defines the interface to a running "gm batch" engine.
// Implement this to drive gm through something other than a local child
// process, or to script responses in tests.
//
// A Connection is the only caller of these methods and never calls them
// concurrently. The default implementation is subprocess.GMProcess.
type Process interface {
	// Write appends request bytes to the process input.
	// Data may be buffered until Flush is called.
	io.Writer

	// Flush pushes buffered request bytes to the process.
	Flush() error

	// ReadLine returns the next line of process output without its line
	// terminator. It returns io.EOF once the output stream has ended.
	ReadLine() (string, error)

	// Terminate stops the process and releases its resources.
	// It's safe to call Terminate multiple times.
	Terminate() error
}
