package rewrite

import "strings"

// SplitArgs splits a raw argument-list string on top-level commas. A comma
// separates arguments only when it is outside string literals and at zero
// paren/brace nesting depth. Three quote kinds are recognized (single, double,
// backtick); a string closes only on the same quote character that opened it.
//
// Escape sequences inside string literals are not interpreted: a string
// containing an escaped matching quote will be mis-split. On unbalanced input
// the scan still terminates and returns whatever fragments accumulated, so
// callers must treat the output as best-effort, never as a verified parse.
func SplitArgs(argsText string) []string {
	var args []string
	var current strings.Builder
	inString := false
	var stringChar rune
	parenDepth := 0
	braceDepth := 0

	for _, ch := range argsText {
		switch {
		case !inString && (ch == '"' || ch == '\'' || ch == '`'):
			inString = true
			stringChar = ch
		case inString && ch == stringChar:
			inString = false
			stringChar = 0
		case !inString && ch == '(':
			parenDepth++
		case !inString && ch == ')':
			parenDepth--
		case !inString && ch == '{':
			braceDepth++
		case !inString && ch == '}':
			braceDepth--
		case !inString && ch == ',' && parenDepth == 0 && braceDepth == 0:
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}

	// Only the trailing in-flight fragment is dropped when empty; interior
	// empties separated by real commas are kept above.
	if tail := strings.TrimSpace(current.String()); tail != "" {
		args = append(args, tail)
	}
	return args
}
