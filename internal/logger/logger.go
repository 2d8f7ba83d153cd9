package logger

// Logger is the minimal logging surface threaded through commands and the
// batch runner.
type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}
