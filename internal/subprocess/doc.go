// Package subprocess provides Process implementations for the gm engine.
//
// GMProcess spawns "gm batch" as a child process and talks to it over
// stdin/stdout. StreamProcess adapts any writer/reader pair, which is useful
// for engines reached over other channels and for tests.
package subprocess
