package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// UILogger renders progress-style messages in place on a terminal: each
// message overwrites the previous one instead of scrolling, which keeps
// long batch runs readable. On non-interactive output it degrades to plain
// line printing.
type UILogger struct {
	mu      sync.Mutex
	out     io.Writer
	inline  bool
	lastLen int
}

// NewUILogger creates a UI logger bound to stdout. In-place rendering is
// only enabled when stdout is a terminal.
func NewUILogger() *UILogger {
	return &UILogger{out: os.Stdout, inline: IsInteractive()}
}

// IsInteractive reports whether stdout is attached to a terminal. Piped or
// redirected output (tests, CI) gets stable plain lines instead of
// control-character rewrites.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (l *UILogger) Logf(format string, args ...interface{}) {
	l.write(fmt.Sprintf(format, args...))
}

func (l *UILogger) Log(msg string) {
	l.write(msg + "\n")
}

// Flush terminates any in-place line so subsequent output starts clean.
func (l *UILogger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastLen > 0 {
		fmt.Fprintln(l.out)
		l.lastLen = 0
	}
}

func (l *UILogger) write(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.inline {
		fmt.Fprint(l.out, msg)
		return
	}
	line := strings.TrimSuffix(msg, "\n")
	line = strings.ReplaceAll(line, "\n", " ")
	pad := ""
	if n := l.lastLen - len(line); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(l.out, "\r%s%s", line, pad)
	l.lastLen = len(line)
}
