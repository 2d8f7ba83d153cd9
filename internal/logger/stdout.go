package logger

import (
	"fmt"
	"io"
	"os"
)

// StdoutLogger writes plain log lines to a writer, stdout by default.
// Injecting the writer keeps command output assertable in tests.
type StdoutLogger struct {
	Out io.Writer
}

// NewStdoutLogger creates a logger writing to the given writer; nil means
// stdout.
func NewStdoutLogger(out io.Writer) *StdoutLogger {
	return &StdoutLogger{Out: out}
}

func (l *StdoutLogger) writer() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

func (l *StdoutLogger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(l.writer(), format, args...)
}

func (l *StdoutLogger) Log(msg string) {
	fmt.Fprintln(l.writer(), msg)
}
