package typecheck

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Checker runs the configured external type-checker and interprets its
// diagnostics. The checker is invoked, never embedded.
type Checker struct {
	Command          string
	Args             []string
	Dir              string
	NodeOptions      string
	DiagnosticPrefix string
	ScratchFile      string
	Commander        Commander
}

// VerifyResult summarizes a post-batch verification run.
type VerifyResult struct {
	RemainingErrors int    `json:"remaining_errors"`
	Residual        string `json:"residual,omitempty"`
}

// NewChecker creates a checker with the given settings, backed by the real
// commander unless one is injected afterwards.
func NewChecker(command string, args []string, dir string) *Checker {
	return &Checker{
		Command:          command,
		Args:             args,
		Dir:              dir,
		NodeOptions:      "--max-old-space-size=8192",
		DiagnosticPrefix: "src/",
		ScratchFile:      "/tmp/remaining-type-errors.log",
		Commander:        NewRealCommander(),
	}
}

// Run invokes the checker once and returns its combined output. The checker
// exiting non-zero is expected whenever diagnostics exist, so an exec error
// is only surfaced when no recognizable output came back.
func (c *Checker) Run(ctx context.Context) (string, error) {
	if _, err := c.Commander.LookPath(c.Command); err != nil {
		return "", fmt.Errorf("type-checker %q not available: %w", c.Command, err)
	}
	var env []string
	if c.NodeOptions != "" {
		env = []string{"NODE_OPTIONS=" + c.NodeOptions}
	}
	output, err := c.Commander.Run(ctx, c.Command, c.Args, c.Dir, env)
	if err != nil && strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("type-checker invocation failed: %w", err)
	}
	return output, nil
}

// ParseDiagnostics extracts the diagnostic lines beginning with the
// project-relative path prefix.
func (c *Checker) ParseDiagnostics(output string) []string {
	prefix := c.DiagnosticPrefix
	if prefix == "" {
		prefix = "src/"
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, prefix) {
			lines = append(lines, line)
		}
	}
	return lines
}

// FilesFromDiagnostics recovers file paths from diagnostic lines: the text
// up to the first '(' on each line, unique and sorted. Lines without a
// position marker are ignored.
func FilesFromDiagnostics(lines []string) []string {
	seen := make(map[string]bool)
	for _, line := range lines {
		idx := strings.Index(line, "(")
		if idx <= 0 {
			continue
		}
		seen[line[:idx]] = true
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// DiscoverFiles runs the checker and derives the file set to rewrite from
// its diagnostics.
func (c *Checker) DiscoverFiles(ctx context.Context) ([]string, error) {
	output, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}
	return FilesFromDiagnostics(c.ParseDiagnostics(output)), nil
}

// Verify re-runs the checker after a batch. When recognized errors remain
// the full checker output is persisted to the scratch file for inspection.
// Exit-code mapping is the caller's concern.
func (c *Checker) Verify(ctx context.Context) (*VerifyResult, error) {
	output, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}
	lines := c.ParseDiagnostics(output)
	result := &VerifyResult{RemainingErrors: len(lines)}
	if len(lines) > 0 {
		result.Residual = output
		if c.ScratchFile != "" {
			if werr := os.WriteFile(c.ScratchFile, []byte(output), 0644); werr != nil {
				return result, fmt.Errorf("failed to persist residual diagnostics: %w", werr)
			}
		}
	}
	return result, nil
}
