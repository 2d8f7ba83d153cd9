// Package typecheck invokes the project's external type-checker and parses
// its diagnostic output, both to discover files worth rewriting and to
// verify a batch afterwards.
package typecheck

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Commander abstracts command execution so the checker can be tested
// without a real toolchain on PATH.
type Commander interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args []string, dir string, env []string) (string, error)
}

// RealCommander executes actual system commands.
type RealCommander struct{}

// NewRealCommander creates a commander backed by os/exec.
func NewRealCommander() Commander {
	return &RealCommander{}
}

// LookPath checks if a command exists.
func (r *RealCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes a command and returns its combined output. Extra env entries
// are appended to the inherited environment.
func (r *RealCommander) Run(ctx context.Context, name string, args []string, dir string, env []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// MockCommander records invocations and returns canned responses for tests.
type MockCommander struct {
	Commands      map[string]bool   // which commands exist
	Responses     map[string]string // command pattern -> output
	Errors        map[string]error  // command pattern -> error
	RecordedCalls []RecordedCall
}

// RecordedCall captures one command invocation.
type RecordedCall struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// NewMockCommander creates an empty mock.
func NewMockCommander() *MockCommander {
	return &MockCommander{
		Commands:  make(map[string]bool),
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// LookPath checks if a command exists in the mock.
func (m *MockCommander) LookPath(name string) (string, error) {
	if m.Commands[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Run records the call and returns the mocked response, matching exact
// command strings first and prefixes second.
func (m *MockCommander) Run(ctx context.Context, name string, args []string, dir string, env []string) (string, error) {
	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Name: name, Args: args, Dir: dir, Env: env})

	key := name + " " + strings.Join(args, " ")
	if err, ok := m.Errors[key]; ok {
		return m.Responses[key], err
	}
	if resp, ok := m.Responses[key]; ok {
		return resp, nil
	}
	for pattern, err := range m.Errors {
		if strings.HasPrefix(key, pattern) {
			return m.Responses[pattern], err
		}
	}
	for pattern, resp := range m.Responses {
		if strings.HasPrefix(key, pattern) {
			return resp, nil
		}
	}
	return "", nil
}
