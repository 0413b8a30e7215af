// Package errors defines error types for the GraphicsMagick batch SDK.
//
// Failures fall into two kinds. A ServiceError means the channel to the gm
// process can no longer be trusted (I/O failure, unexpected end of output,
// use of a closed connection). A GMError means GraphicsMagick itself reported
// that the command failed; the connection remains usable. All error types
// support unwrapping and can be checked using errors.Is, errors.As, and
// errors.AsType.
package errors
