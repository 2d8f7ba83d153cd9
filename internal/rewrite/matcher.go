package rewrite

import "strings"

// CallSite is a located occurrence of the recognized dotted-call shape.
// The span [Start, End) covers `<namespace>.<level>(...)` including the
// closing paren, so it can be replaced wholesale.
type CallSite struct {
	Level   string
	RawArgs string
	Start   int
	End     int
}

// Matcher scans file text for calls of the form <Namespace>.<level>(...),
// where level is one of a fixed set of names. It locates the outer call
// boundary with a bounded lookahead: the argument text may contain at most
// one nested parenthesized sub-expression. Anything deeper aborts the
// candidate and the text is left alone. The scan is not string-aware; a
// close paren inside a string literal ends the lookahead early, which
// downstream degrades to "no rewrite needed", never to corruption.
type Matcher struct {
	Namespace string
	Levels    []string
}

// NewMatcher creates a matcher for the given namespace and level names.
func NewMatcher(namespace string, levels []string) *Matcher {
	return &Matcher{Namespace: namespace, Levels: levels}
}

// FindCalls returns every call site in fileText, in text order.
// The scan is read-only; overlapping candidates are impossible because the
// cursor always advances past the previous match.
func (m *Matcher) FindCalls(fileText string) []CallSite {
	var sites []CallSite
	if m.Namespace == "" || len(m.Levels) == 0 {
		return sites
	}
	prefix := m.Namespace + "."
	pos := 0
	for pos < len(fileText) {
		idx := indexFrom(fileText, prefix, pos)
		if idx < 0 {
			break
		}
		// The namespace token must not be the tail of a longer identifier.
		if idx > 0 && isIdentChar(fileText[idx-1]) {
			pos = idx + 1
			continue
		}
		level, ok := m.levelAt(fileText, idx+len(prefix))
		if !ok {
			pos = idx + 1
			continue
		}
		argsStart := idx + len(prefix) + len(level) + 1
		rawArgs, end, ok := scanCallArgs(fileText, argsStart)
		if !ok {
			pos = idx + 1
			continue
		}
		sites = append(sites, CallSite{
			Level:   level,
			RawArgs: rawArgs,
			Start:   idx,
			End:     end,
		})
		pos = end
	}
	return sites
}

// levelAt reports which configured level name, immediately followed by an
// opening paren, begins at offset i.
func (m *Matcher) levelAt(text string, i int) (string, bool) {
	for _, level := range m.Levels {
		end := i + len(level)
		if end < len(text) && text[i:end] == level && text[end] == '(' {
			return level, true
		}
	}
	return "", false
}

// scanCallArgs scans from just after the opening paren to the call's closing
// paren, allowing at most one nested paren pair. Returns the raw argument
// text and the offset just past the closing paren. Empty argument lists and
// candidates with a second nested pair report no match.
func scanCallArgs(text string, start int) (string, int, bool) {
	sawNested := false
	inNested := false
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '(':
			if inNested || sawNested {
				return "", 0, false
			}
			inNested = true
		case ')':
			if inNested {
				inNested = false
				sawNested = true
				continue
			}
			if i == start {
				return "", 0, false
			}
			return text[start:i], i + 1, true
		}
	}
	return "", 0, false
}

func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	if i := strings.Index(s[from:], substr); i >= 0 {
		return from + i
	}
	return -1
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
