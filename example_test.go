package gmbatch_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gmbatch "github.com/wagiedev/gm-batch-sdk-go"
)

func ExampleNewConnection() {
	// A canned engine transcript stands in for a running gm batch process.
	engine := strings.NewReader("100x100\nOK\nconvert: unable to open image 'missing.png'\nNG\n")

	conn, err := gmbatch.NewConnection(gmbatch.NewStreamProcess(io.Discard, engine, nil))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	size, err := conn.Execute("identify", "-format", "%wx%h", "a.png")
	if err != nil {
		panic(err)
	}

	fmt.Print(size)

	_, err = conn.Execute("convert", "missing.png", "out.png")
	if gmErr, ok := errors.AsType[*gmbatch.GMError](err); ok {
		fmt.Print("failed: ", gmErr.Message)
	}

	// Output:
	// 100x100
	// failed: convert: unable to open image 'missing.png'
}
