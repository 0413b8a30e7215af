// Package connection implements the Connection that drives one gm engine.
//
// A Connection owns exactly one Process. Execute writes one request line,
// then blocks reading until gm prints a pass or fail sentinel, so one
// request is fully drained before the next one is written. Connections do
// no request locking; callers that share one across goroutines must serialize
// Execute themselves, and parallelism comes from using several connections.
// Close is the exception: it may run while Execute is blocked, which then
// returns once gm's output ends.
package connection
