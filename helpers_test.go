package gmbatch_test

import (
	"bufio"
	"fmt"
	"io"
	"testing"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

// newPipeEngine runs handler as an in-process gm batch engine. handler gets
// each request line and returns the lines to print, including the sentinel.
func newPipeEngine(t *testing.T, handler func(line string) []string) (gmbatch.Process, <-chan struct{}) {
	t.Helper()

	reqR, reqW := io.Pipe()
	respR, respW := io.Pipe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer respW.Close()

		scanner := bufio.NewScanner(reqR)
		for scanner.Scan() {
			for _, line := range handler(scanner.Text()) {
				if _, err := fmt.Fprintln(respW, line); err != nil {
					return
				}
			}
		}
	}()

	process := gmbatch.NewStreamProcess(reqW, respR, func() error {
		err := reqW.Close()
		<-done

		return err
	})

	return process, done
}
