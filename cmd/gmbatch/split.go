package main

import (
	"errors"
	"strings"
	"unicode"
)

var errUnterminatedQuote = errors.New("unterminated quoted token")

// splitCommandLine splits one script line into tokens. A token wrapped in
// double quotes may contain spaces, and "" inside it stands for one quote.
// A line whose first token starts with # is a comment.
func splitCommandLine(line string) ([]string, error) {
	var tokens []string

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(rest, "#") {
		return nil, nil
	}

	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return tokens, nil
		}

		if rest[0] != '"' {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}

			tokens = append(tokens, rest[:end])
			rest = rest[end:]

			continue
		}

		var sb strings.Builder

		i := 1
		for {
			j := strings.IndexByte(rest[i:], '"')
			if j < 0 {
				return nil, errUnterminatedQuote
			}

			sb.WriteString(rest[i : i+j])
			i += j + 1

			if i < len(rest) && rest[i] == '"' {
				sb.WriteByte('"')
				i++

				continue
			}

			break
		}

		tokens = append(tokens, sb.String())
		rest = rest[i:]
	}
}
