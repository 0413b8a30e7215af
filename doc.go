// Package gmbatch provides a Go SDK for driving GraphicsMagick in batch mode.
//
// Starting gm for every image operation is expensive. This SDK keeps a
// "gm batch" process running and sends it one command per line, reading the
// output back until gm reports that the command passed or failed.
//
// # Basic Usage
//
// Open a connection, execute commands, and close it when done:
//
//	conn, err := gmbatch.Open(ctx, gmbatch.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	size, err := conn.Execute("identify", "-format", "%wx%h", "a.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(size)
//
// Or let WithConnection manage the lifecycle:
//
//	err := gmbatch.WithConnection(ctx, func(conn gmbatch.Connection) error {
//	    _, err := conn.Execute("convert", "in.png", "-resize", "50%", "out.png")
//	    return err
//	})
//
// Arguments are sent verbatim; no shell is involved, so spaces and quotes in
// file names need no escaping by the caller.
//
// # Concurrency
//
// A Connection runs one command at a time and is not safe for concurrent
// use. Open one connection per goroutine to process images in parallel.
// Execute blocks until gm answers. Close may be called from another
// goroutine while Execute is blocked, e.g. when a deadline passes; the
// blocked Execute then returns a *ServiceError.
//
// # Error Handling
//
// The SDK distinguishes gm reporting a failed command from the connection
// itself failing:
//
//	out, err := conn.Execute("convert", "missing.png", "out.png")
//	if gmErr, ok := errors.AsType[*gmbatch.GMError](err); ok {
//	    // gm rejected the command; conn can still be used.
//	    log.Printf("gm: %s", gmErr.Message)
//	}
//	if svcErr, ok := errors.AsType[*gmbatch.ServiceError](err); ok {
//	    // The process or its pipes failed; discard conn.
//	    log.Printf("service: %v", svcErr)
//	}
//
// # Requirements
//
// GraphicsMagick 1.3.18 or newer must be installed. The gm binary is searched
// in PATH and common installation directories; use WithGMPath to point at a
// specific binary.
package gmbatch
