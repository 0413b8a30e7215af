package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// decodeArgument collapses a quoted token back into the raw argument.
func decodeArgument(t require.TestingT, token string) string {
	require.GreaterOrEqual(t, len(token), 2, "token too short: %q", token)
	require.Equal(t, byte('"'), token[0])
	require.Equal(t, byte('"'), token[len(token)-1])

	var sb strings.Builder

	body := token[1 : len(token)-1]
	for i := 0; i < len(body); i++ {
		if body[i] == '"' {
			require.Less(t, i+1, len(body), "lone quote at end of %q", token)
			require.Equal(t, byte('"'), body[i+1], "undoubled quote in %q", token)
			i++
		}

		sb.WriteByte(body[i])
	}

	return sb.String()
}

func TestEncodeArgument(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "empty", arg: "", want: `""`},
		{name: "plain", arg: "a.png", want: `"a.png"`},
		{name: "format string", arg: "%wx%h", want: `"%wx%h"`},
		{name: "spaces", arg: "my file.jpg", want: `"my file.jpg"`},
		{name: "single quote char", arg: `"`, want: `""""`},
		{name: "embedded quotes", arg: `say "cheese"`, want: `"say ""cheese"""`},
		{name: "adjacent quotes", arg: `a""b`, want: `"a""""b"`},
		{name: "backslash untouched", arg: `C:\images\a.png`, want: `"C:\images\a.png"`},
		{name: "unicode", arg: "日本.png", want: `"日本.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeArgument(tt.arg))
		})
	}
}

func TestAppendArgument_PrefixesSpace(t *testing.T) {
	dst := AppendArgument([]byte("convert"), `a "b"`)

	require.Equal(t, `convert "a ""b"""`, string(dst))
}

func TestEncodeArgument_Properties(t *testing.T) {
	chars := rapid.OneOf(rapid.Rune(), rapid.Just('"'), rapid.Just(' '))

	rapid.Check(t, func(t *rapid.T) {
		arg := rapid.StringOf(chars).Draw(t, "arg")
		quotes := strings.Count(arg, `"`)

		token := EncodeArgument(arg)

		require.Len(t, token, len(arg)+2+quotes)
		require.True(t, strings.HasPrefix(token, `"`))
		require.True(t, strings.HasSuffix(token, `"`))
		require.Equal(t, arg, decodeArgument(t, token))
	})
}
