// Package discovery resolves the file set a batch operates on.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-enry/go-enry/v2"

	"github.com/restitch/cli/internal/typecheck"
)

// Options selects a discovery strategy, in precedence order: an explicit
// file list, checker-diagnostic derivation, then a directory walk.
type Options struct {
	// Files is an explicit path list; when non-empty it wins outright.
	Files []string
	// FromCheck derives the file set from the type-checker's diagnostics.
	FromCheck bool
	// Checker runs the external type-checker for FromCheck mode.
	Checker *typecheck.Checker
	// Root is the directory walked when no other strategy applies.
	Root string
	// ExcludeDirs are directory names skipped during the walk.
	ExcludeDirs []string
}

// Resolve returns a sorted, de-duplicated list of target paths.
func Resolve(ctx context.Context, opts Options) ([]string, error) {
	if len(opts.Files) > 0 {
		return normalize(opts.Files), nil
	}
	if opts.FromCheck {
		if opts.Checker == nil {
			return nil, errors.New("diagnostic-driven discovery requires a checker")
		}
		return opts.Checker.DiscoverFiles(ctx)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excluded[d] = true
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if excluded[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		ok, err := isTypeScriptSource(path)
		if err != nil {
			// Unreadable candidates are skipped, not fatal.
			return nil
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return normalize(files), nil
}

// isTypeScriptSource accepts .ts/.tsx-family files, confirming ambiguous
// extensions by content classification. A .ts file can be an MPEG transport
// stream or XML translation file; enry settles it.
func isTypeScriptSource(path string) (bool, error) {
	switch filepath.Ext(path) {
	case ".tsx", ".mts", ".cts":
		return true, nil
	case ".ts":
	default:
		return false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	lang := enry.GetLanguage(filepath.Base(path), data)
	return lang == "TypeScript" || lang == "TSX" || lang == "", nil
}

func normalize(files []string) []string {
	seen := make(map[string]bool, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
