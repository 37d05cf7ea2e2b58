// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"strings"

	"github.com/google/shlex"
)

// fieldSpecials are the runes that make the shell lexer treat a sub-field as
// more than a bare word.
const fieldSpecials = " \t\r\n\"'\\#"

// splitFields splits s into sub-fields with shell quoting rules: single or
// double quotes group a sub-field that contains whitespace, a backslash escapes
// the next rune outside single quotes, and a word starting with # comments out
// the rest of the token.
func splitFields(s string) ([]string, error) {
	return shlex.Split(s)
}

// quoteField is the inverse of splitFields for a single sub-field. Single
// quotes inside s are closed, escaped and reopened.
func quoteField(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, fieldSpecials) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
