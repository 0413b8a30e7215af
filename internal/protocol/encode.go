package protocol

import "strings"

const quote = '"'

// EncodeArgument wraps arg in double quotes and doubles every quote inside it.
// No other character is altered.
func EncodeArgument(arg string) string {
	return string(appendQuoted(make([]byte, 0, len(arg)+2+strings.Count(arg, `"`)), arg))
}

// AppendArgument appends the wire form of one argument to dst: a separating
// space followed by the encoded argument.
func AppendArgument(dst []byte, arg string) []byte {
	dst = append(dst, ' ')

	return appendQuoted(dst, arg)
}

func appendQuoted(dst []byte, arg string) []byte {
	dst = append(dst, quote)

	for {
		i := strings.IndexByte(arg, quote)
		if i < 0 {
			break
		}

		dst = append(dst, arg[:i+1]...)
		dst = append(dst, quote)
		arg = arg[i+1:]
	}

	dst = append(dst, arg...)

	return append(dst, quote)
}
