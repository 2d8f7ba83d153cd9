package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// LoggingRecipe normalizes multi-argument logging calls into the
// `<namespace>.<level>(message, { metadata })` shape. Calls with zero or one
// argument, and calls whose second and final argument is already an object
// literal, are left untouched, which makes the recipe idempotent.
type LoggingRecipe struct {
	matcher *Matcher
}

// NewLoggingRecipe creates a logging recipe for the given call namespace
// (e.g. "log") and level names (e.g. error, warn, info, debug).
func NewLoggingRecipe(namespace string, levels []string) *LoggingRecipe {
	return &LoggingRecipe{matcher: NewMatcher(namespace, levels)}
}

// Name returns the recipe identifier.
func (r *LoggingRecipe) Name() string { return "logging" }

// Apply rewrites every matching call site in text and reports whether
// anything changed. The input is never mutated; edits are collected as spans
// and spliced in a single pass.
func (r *LoggingRecipe) Apply(text string) RewriteResult {
	sites := r.matcher.FindCalls(text)
	var edits []spanEdit
	for _, site := range sites {
		replacement, ok := r.rewriteCall(site)
		if !ok {
			continue
		}
		edits = append(edits, spanEdit{Start: site.Start, End: site.End, Replacement: replacement})
	}
	content := applyEdits(text, edits)
	return RewriteResult{Content: content, Changed: content != text}
}

// rewriteCall produces the replacement text for one call site, or reports
// that the call is already in final form. On any ambiguity it declines to
// rewrite rather than guess.
func (r *LoggingRecipe) rewriteCall(site CallSite) (string, bool) {
	args := SplitArgs(site.RawArgs)
	if len(args) <= 1 {
		return "", false
	}
	if len(args) == 2 {
		second := args[1]
		if strings.HasPrefix(second, "{") && strings.HasSuffix(second, "}") {
			return "", false
		}
	}

	message := args[0]
	rest := args[1:]
	entries := make([]string, 0, len(rest))
	for i, arg := range rest {
		if identifierRe.MatchString(arg) {
			// Bare identifier: shorthand property.
			entries = append(entries, arg)
		} else {
			entries = append(entries, fmt.Sprintf("arg%d: %s", i+1, arg))
		}
	}

	return fmt.Sprintf("%s.%s(%s, { %s })",
		r.matcher.Namespace, site.Level, message, strings.Join(entries, ", ")), true
}
