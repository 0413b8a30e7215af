// Package protocol implements the line protocol spoken by "gm batch".
//
// A request is a single line: the command name followed by each argument
// wrapped in double quotes, with embedded quotes doubled:
//
//	identify "-format" "%wx%h" "a.png"
//
// GraphicsMagick answers with zero or more lines of output followed by a
// sentinel line, PassToken when the command succeeded or FailToken when it
// failed. Everything before the sentinel is the response text.
//
// Example usage:
//
//	if err := protocol.WriteRequest(w, "identify", []string{"a.png"}); err != nil {
//	    return err
//	}
//
//	var reader protocol.ResponseReader
//	resp, err := reader.Read(lines)
//
// A sentinel line inside the command output cannot be told apart from the
// real end of the response. This matches how gm frames its feedback.
package protocol
