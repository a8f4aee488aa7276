package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// BasicLogger writes plain prefixed lines; used when attached to a terminal
type BasicLogger struct {
	verbose bool
	out     *log.Logger
}

func NewLogger(verbose bool) *BasicLogger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo writes to w instead of stderr
func NewLoggerTo(w io.Writer, verbose bool) *BasicLogger {
	return &BasicLogger{
		verbose: verbose,
		out:     log.New(w, "", 0),
	}
}

func (l *BasicLogger) Title(msg string, args ...any) {
	l.print("", "\n"+msg+"\n", args...)
}

func (l *BasicLogger) Info(msg string, args ...any) {
	l.print("", msg, args...)
}

func (l *BasicLogger) Warn(msg string, args ...any) {
	l.print("Warning: ", msg, args...)
}

func (l *BasicLogger) Error(msg string, args ...any) {
	l.print("Error: ", msg, args...)
}

func (l *BasicLogger) Debug(msg string, args ...any) {
	if !l.verbose {
		return
	}
	l.print("Debug: ", msg, args...)
}

// print formats once and emits every resulting line with prefix
func (l *BasicLogger) print(prefix, msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
		l.out.Printf("%s%s", prefix, line)
	}
}
