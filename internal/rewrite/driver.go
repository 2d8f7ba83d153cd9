package rewrite

import (
	"fmt"
	"os"
)

// RewriteResult is the sole output of applying a Recipe to a file's text.
// Changed holds iff Content differs from the original input.
type RewriteResult struct {
	Content string `json:"content"`
	Changed bool   `json:"changed"`
}

// Recipe is a deterministic text-in/text-out transformation tied to one
// classified pattern. Recipes are pure functions over the file text and keep
// no state between files.
type Recipe interface {
	Name() string
	Apply(text string) RewriteResult
}

// Outcome reports what processing a single file did.
type Outcome int

const (
	// Modified means the file content changed and was written back
	// (or would have been, under dry-run).
	Modified Outcome = iota
	// Skipped means the file was left untouched.
	Skipped
	// NotFound means the file does not exist.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Modified:
		return "modified"
	case Skipped:
		return "skipped"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// ValidateFunc inspects a rewritten file's content before it is written
// back. A non-nil error vetoes the write.
type ValidateFunc func(path, content string) error

// Driver owns one file's read-transform-write sequence. It reads the whole
// file, applies the configured Recipe, and writes the full replacement
// content back only when it actually changed. A file is never partially
// written.
type Driver struct {
	Recipe   Recipe
	DryRun   bool
	Backup   bool
	Validate ValidateFunc
}

// NewDriver creates a driver for the given recipe.
func NewDriver(recipe Recipe) *Driver {
	return &Driver{Recipe: recipe}
}

// Process transforms a single file. Read and write failures are reported
// alongside a Skipped/NotFound outcome so a batch can absorb them and keep
// going.
func (d *Driver) Process(path string) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NotFound, nil
		}
		return Skipped, fmt.Errorf("failed to read %s: %w", path, err)
	}

	original := string(data)
	result := d.Recipe.Apply(original)
	if !result.Changed {
		return Skipped, nil
	}

	if d.Validate != nil {
		if err := d.Validate(path, result.Content); err != nil {
			return Skipped, fmt.Errorf("rewrite vetoed for %s: %w", path, err)
		}
	}

	if d.DryRun {
		return Modified, nil
	}

	if d.Backup {
		if err := os.WriteFile(path+".backup", data, 0644); err != nil {
			return Skipped, fmt.Errorf("failed to create backup for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(result.Content), 0644); err != nil {
		return Skipped, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return Modified, nil
}
