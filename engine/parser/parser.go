// Package parser normalizes raw input lines into command tokens.
// Intentionally dumb: no NLP, the registry matches tokens exactly.
package parser

import (
	"strings"
)

// Normalize trims the line and collapses runs of whitespace to a single
// space, so "  pick   up " becomes "pick up". With fold set the token is
// also lowercased; otherwise case is preserved.
func Normalize(input string, fold bool) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}
	token := strings.Join(words, " ")
	if fold {
		token = strings.ToLower(token)
	}
	return token
}

// IsComment reports whether a script line is a comment or blank.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
