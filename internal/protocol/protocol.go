package protocol

const (
	// PassToken is the line gm prints after a command succeeds.
	PassToken = "OK"

	// FailToken is the line gm prints after a command fails.
	FailToken = "NG"

	// NormalBufferSize is the response buffer capacity retained between reads.
	// A larger buffer is released once the response that grew it is returned.
	NormalBufferSize = 4096
)

// Status reports how gm ended a response.
type Status int

const (
	// StatusPass means gm printed PassToken.
	StatusPass Status = iota + 1
	// StatusFail means gm printed FailToken.
	StatusFail
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Response is one complete answer from gm.
type Response struct {
	Status Status
	// Text is every line printed before the sentinel, each followed by EOL.
	Text string
}
