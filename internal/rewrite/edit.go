package rewrite

import (
	"sort"
	"strings"
)

// spanEdit replaces text[Start:End) with Replacement.
type spanEdit struct {
	Start       int
	End         int
	Replacement string
}

// applyEdits splices a set of non-overlapping edits into text in one pass,
// producing a new string. Edits are applied in span order; an edit that
// overlaps an already-applied one is dropped rather than corrupting the text.
func applyEdits(text string, edits []spanEdit) string {
	if len(edits) == 0 {
		return text
	}
	sorted := make([]spanEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	pos := 0
	for _, e := range sorted {
		if e.Start < pos || e.End > len(text) {
			continue
		}
		b.WriteString(text[pos:e.Start])
		b.WriteString(e.Replacement)
		pos = e.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
