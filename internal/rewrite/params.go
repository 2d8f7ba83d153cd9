package rewrite

import (
	"regexp"
	"strings"
)

// DefaultLegacyIdentifiers lists the entity-specific route-parameter variable
// names that older hook-pattern pages bound off the params object. Each is
// removed as an extraction statement and renamed to the generic parameter
// name during migration.
var DefaultLegacyIdentifiers = []string{
	"taskId",
	"orderId",
	"paymentId",
	"invoiceId",
	"shipmentId",
	"inspectionId",
	"jobId",
	"documentId",
}

// ParamsRecipe migrates page components from synchronous route-parameter
// access to the asynchronous-unwrap pattern: the params prop becomes a
// Promise and is resolved with `use(params)` as the function's first
// statement.
//
// Every edit step checks for its own structural anchor; a step whose anchor
// is missing is skipped silently and the remaining steps still run. Partial,
// re-runnable progress is preferred over an all-or-nothing transform on code
// whose shape was only heuristically detected.
type ParamsRecipe struct {
	legacy []string
}

// NewParamsRecipe creates a params-migration recipe. When legacy is empty the
// default legacy identifier list is used.
func NewParamsRecipe(legacy []string) *ParamsRecipe {
	if len(legacy) == 0 {
		legacy = DefaultLegacyIdentifiers
	}
	return &ParamsRecipe{legacy: legacy}
}

// Name returns the recipe identifier.
func (r *ParamsRecipe) Name() string { return "params" }

// Apply classifies text and runs the ordered edits for its variant.
// Already-migrated and unrecognized files come back unchanged.
func (r *ParamsRecipe) Apply(text string) RewriteResult {
	c := Classify(text)

	content := text
	switch c.Variant {
	case ParamsPropPattern:
		content = addUseImport(content)
		content = migratePropPattern(content, c.ParamName)
	case HookPattern:
		content = addUseImport(content)
		content = r.migrateHookPattern(content, c.ParamName)
	}

	return RewriteResult{Content: content, Changed: content != text}
}

var (
	useImportedRe    = regexp.MustCompile(`import\s*\{[^}]*\buse\b[^}]*\}\s*from\s*["']react["']`)
	reactImportRe    = regexp.MustCompile(`(import\s*\{)([^}]*)(}\s*from\s*["']react["'])`)
	funcWithParamRe  = regexp.MustCompile(`export\s+default\s+function\s+\w+\s*\([^)]*params[^)]*\)\s*\{`)
	funcDeclRe       = regexp.MustCompile(`export\s+default\s+function\s+\w+`)
	emptyParamsRe    = regexp.MustCompile(`(export\s+default\s+function\s+\w+)\(\)`)
	hookCallRe       = regexp.MustCompile(`[ \t]*const\s+params\s*=\s*useParams\(\);\s*\n`)
	soleHookImportRe = regexp.MustCompile(`import\s*\{\s*useParams\s*\}\s*from\s*["'][^"']*["'];?[ \t]*\n`)
	hookSpecifierRe  = regexp.MustCompile(`useParams\s*,\s*|,\s*useParams\b`)
)

// addUseImport injects `use` as the first specifier of the first braced
// react import, unless it is already imported. Files without a braced react
// import are left alone.
func addUseImport(text string) string {
	if !strings.Contains(text, `from "react"`) && !strings.Contains(text, "from 'react'") {
		return text
	}
	if useImportedRe.MatchString(text) {
		return text
	}
	loc := reactImportRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[3]] + " use," + text[loc[4]:]
}

// migratePropPattern rewrites a file that already receives params as a prop:
// the type annotation is wrapped in Promise<...>, an unwrap binding becomes
// the function's first statement, and member accesses collapse to the bare
// name. The rename only happens when the function anchor was found; without
// the binding it would reference nothing.
func migratePropPattern(text, name string) string {
	annotationRe := regexp.MustCompile(`params:\s*\{\s*` + name + `:\s*string\s*\}`)
	text = annotationRe.ReplaceAllString(text, "params: Promise<{ "+name+": string }>")

	if loc := funcWithParamRe.FindStringIndex(text); loc != nil {
		text = insertUnwrapBinding(text, loc[1], name)
		memberRe := regexp.MustCompile(`\bparams\.` + name + `\b`)
		text = memberRe.ReplaceAllString(text, name)
	}
	return text
}

// migrateHookPattern converts a useParams() file to the prop pattern: the
// hook call and import go away, legacy extraction lines are dropped, a
// PageProps type is synthesized above the component, the empty parameter
// list becomes a destructured `{ params }`, the unwrap binding is inserted,
// and legacy identifiers are renamed whole-word to the generic name.
func (r *ParamsRecipe) migrateHookPattern(text, name string) string {
	text = hookCallRe.ReplaceAllString(text, "")
	if soleHookImportRe.MatchString(text) {
		text = soleHookImportRe.ReplaceAllString(text, "")
	} else {
		text = hookSpecifierRe.ReplaceAllString(text, "")
	}

	for _, re := range r.extractionPatterns(name) {
		text = re.ReplaceAllString(text, "")
	}

	if loc := funcDeclRe.FindStringIndex(text); loc != nil {
		pageProps := "interface PageProps {\n  params: Promise<{ " + name + ": string }>;\n}\n\n"
		text = text[:loc[0]] + pageProps + text[loc[0]:]

		if sig := emptyParamsRe.FindStringSubmatchIndex(text); sig != nil {
			text = text[:sig[2]] + text[sig[2]:sig[3]] + "({ params }: PageProps)" + text[sig[1]:]
		}

		if open := funcWithParamRe.FindStringIndex(text); open != nil {
			text = insertUnwrapBinding(text, open[1], name)
		}
	}

	for _, legacy := range r.legacy {
		wordRe := regexp.MustCompile(`\b` + legacy + `\b`)
		text = wordRe.ReplaceAllString(text, name)
	}
	return text
}

// extractionPatterns matches the pre-existing statements that pulled a named
// field off the old params object into a local variable.
func (r *ParamsRecipe) extractionPatterns(name string) []*regexp.Regexp {
	patterns := []string{
		`[ \t]*const\s+` + name + `\s*=\s*params\.` + name + `\s+as\s+string;\s*\n`,
		`[ \t]*const\s+` + name + `\s*=\s*params\?\.` + name + `\s+as\s+string;\s*\n`,
	}
	for _, legacy := range r.legacy {
		patterns = append(patterns, `[ \t]*const\s+`+legacy+`\s*=\s*params\.id\s+as\s+string;\s*\n`)
	}
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// insertUnwrapBinding inserts `const { <name> } = use(params);` on a fresh
// line after the first newline following the function's opening brace. When
// no newline follows (single-line body) the edit is skipped.
func insertUnwrapBinding(text string, after int, name string) string {
	nl := strings.Index(text[after:], "\n")
	if nl < 0 {
		return text
	}
	pos := after + nl + 1
	return text[:pos] + "  const { " + name + " } = use(params);\n" + text[pos:]
}
