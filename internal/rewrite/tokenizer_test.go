package rewrite

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single argument",
			in:   `"boom"`,
			want: []string{`"boom"`},
		},
		{
			name: "two plain arguments",
			in:   `'failed', err`,
			want: []string{`'failed'`, `err`},
		},
		{
			name: "comma inside double-quoted string",
			in:   `"a, b", c`,
			want: []string{`"a, b"`, `c`},
		},
		{
			name: "comma inside template literal",
			in:   "`took ${ms}ms, really`, extra",
			want: []string{"`took ${ms}ms, really`", "extra"},
		},
		{
			name: "comma inside nested call",
			in:   `fmt(a, b), c`,
			want: []string{`fmt(a, b)`, `c`},
		},
		{
			name: "comma inside object literal",
			in:   `"slow", { ms: 200, path: p }`,
			want: []string{`"slow"`, `{ ms: 200, path: p }`},
		},
		{
			name: "whitespace trimmed from fragments",
			in:   "  a ,\n  b  ",
			want: []string{"a", "b"},
		},
		{
			name: "interior empty fragment kept",
			in:   `a,,b`,
			want: []string{"a", "", "b"},
		},
		{
			name: "trailing empty fragment dropped",
			in:   `a,`,
			want: []string{"a"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace-only input",
			in:   "   ",
			want: nil,
		},
		{
			name: "quote kinds do not close each other",
			in:   `"it's fine", x`,
			want: []string{`"it's fine"`, `x`},
		},
		{
			name: "unbalanced quote is best effort",
			in:   `"unterminated, x`,
			want: []string{`"unterminated, x`},
		},
		{
			name: "unbalanced paren is best effort",
			in:   `f(a, b`,
			want: []string{`f(a, b`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitArgs(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

// For well-formed input the fragment count equals the number of top-level
// commas plus one, and no fragment carries a top-level unbalanced quote or
// bracket.
func TestSplitArgsBalance(t *testing.T) {
	inputs := []struct {
		in            string
		topLevelComma int
	}{
		{`"msg"`, 0},
		{`"msg", err`, 1},
		{`"msg", err, userId`, 2},
		{`"msg", { a: 1, b: f(x, y) }, g(h, "i, j")`, 2},
		{"`${a}`, b, c", 2},
	}
	for _, tc := range inputs {
		got := SplitArgs(tc.in)
		if len(got) != tc.topLevelComma+1 {
			t.Fatalf("SplitArgs(%q): got %d fragments, want %d", tc.in, len(got), tc.topLevelComma+1)
		}
		for _, frag := range got {
			if strings.Count(frag, `"`)%2 != 0 {
				t.Errorf("fragment %q has unbalanced double quotes", frag)
			}
			if !balancedOutsideStrings(frag) {
				t.Errorf("fragment %q has unbalanced brackets", frag)
			}
		}
	}
}

// balancedOutsideStrings checks paren/brace balance ignoring bracket
// characters inside string literals.
func balancedOutsideStrings(s string) bool {
	paren, brace := 0, 0
	inString := false
	var quote rune
	for _, ch := range s {
		switch {
		case !inString && (ch == '"' || ch == '\'' || ch == '`'):
			inString = true
			quote = ch
		case inString && ch == quote:
			inString = false
		case !inString && ch == '(':
			paren++
		case !inString && ch == ')':
			paren--
		case !inString && ch == '{':
			brace++
		case !inString && ch == '}':
			brace--
		}
	}
	return paren == 0 && brace == 0
}
