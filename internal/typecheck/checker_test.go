package typecheck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const tscOutput = `src/app/tasks/[id]/page.tsx(12,5): error TS2345: Argument of type 'string' is not assignable.
src/lib/api.ts(3,10): error TS2554: Expected 2 arguments, but got 3.
src/lib/api.ts(9,10): error TS2554: Expected 2 arguments, but got 3.
node_modules/next/types.d.ts(1,1): error TS1000: should be ignored
Found 3 errors.
`

func newMockChecker(t *testing.T) (*Checker, *MockCommander) {
	t.Helper()
	mock := NewMockCommander()
	mock.Commands["npx"] = true
	c := NewChecker("npx", []string{"tsc", "--noEmit"}, "")
	c.Commander = mock
	c.ScratchFile = filepath.Join(t.TempDir(), "remaining.log")
	return c, mock
}

func TestParseDiagnostics(t *testing.T) {
	c, _ := newMockChecker(t)

	lines := c.ParseDiagnostics(tscOutput)
	if len(lines) != 3 {
		t.Fatalf("expected 3 diagnostic lines, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "src/") {
			t.Errorf("line without project prefix leaked through: %q", line)
		}
	}
}

func TestFilesFromDiagnostics(t *testing.T) {
	c, _ := newMockChecker(t)

	files := FilesFromDiagnostics(c.ParseDiagnostics(tscOutput))
	want := []string{"src/app/tasks/[id]/page.tsx", "src/lib/api.ts"}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
}

func TestDiscoverFiles(t *testing.T) {
	c, mock := newMockChecker(t)
	mock.Errors["npx tsc --noEmit"] = errors.New("exit status 2")
	mock.Responses["npx tsc --noEmit"] = tscOutput

	files, err := c.DiscoverFiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if len(mock.RecordedCalls) != 1 {
		t.Fatalf("expected 1 checker invocation, got %d", len(mock.RecordedCalls))
	}
	env := mock.RecordedCalls[0].Env
	if len(env) != 1 || !strings.HasPrefix(env[0], "NODE_OPTIONS=") {
		t.Errorf("NODE_OPTIONS not passed to checker: %v", env)
	}
}

func TestRunMissingCommand(t *testing.T) {
	c, _ := newMockChecker(t)
	c.Command = "definitely-not-installed"

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatal("missing checker command must be an error")
	}
}

func TestRunFailureWithoutOutput(t *testing.T) {
	c, mock := newMockChecker(t)
	mock.Errors["npx tsc --noEmit"] = errors.New("killed")

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatal("checker failure without diagnostics must be an error")
	}
}

func TestVerifyPersistsResidual(t *testing.T) {
	c, mock := newMockChecker(t)
	mock.Errors["npx tsc --noEmit"] = errors.New("exit status 2")
	mock.Responses["npx tsc --noEmit"] = tscOutput

	result, err := c.Verify(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RemainingErrors != 3 {
		t.Fatalf("remaining errors = %d, want 3", result.RemainingErrors)
	}

	data, err := os.ReadFile(c.ScratchFile)
	if err != nil {
		t.Fatalf("residual diagnostics not persisted: %v", err)
	}
	if string(data) != tscOutput {
		t.Fatal("scratch file must hold the full checker output")
	}
}

func TestVerifyClean(t *testing.T) {
	c, mock := newMockChecker(t)
	mock.Responses["npx tsc --noEmit"] = "Found 0 errors.\n"

	result, err := c.Verify(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RemainingErrors != 0 {
		t.Fatalf("remaining errors = %d, want 0", result.RemainingErrors)
	}
	if _, err := os.Stat(c.ScratchFile); !os.IsNotExist(err) {
		t.Fatal("scratch file must not be written on a clean run")
	}
}
