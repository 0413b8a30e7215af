package cli

import (
	"fmt"
	"os"

	"github.com/wagiedev/gm-batch-sdk-go/internal/config"
	"github.com/wagiedev/gm-batch-sdk-go/internal/protocol"
)

// BuildArgs returns the arguments that start gm in batch mode.
//
// Windows escaping makes gm read a doubled quote inside a quoted argument as
// one literal quote, which is how protocol.EncodeArgument escapes. Feedback
// prints the pass and fail sentinels after every command, and the prompt is
// disabled so no other text is interleaved with the output.
func BuildArgs() []string {
	return []string{
		"batch",
		"-escape", "windows",
		"-feedback", "on",
		"-pass", protocol.PassToken,
		"-fail", protocol.FailToken,
		"-prompt", "off",
	}
}

// BuildEnvironment builds the environment for the gm process.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
