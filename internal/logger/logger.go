// Package logger writes diagnostic lines to stderr when --verbose is set.
// Nothing is printed otherwise, so command output stays clean for piping.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	verbose atomic.Bool

	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetVerbose turns logging on or off.
func SetVerbose(v bool) { verbose.Store(v) }

// IsVerbose reports whether logging is on.
func IsVerbose() bool { return verbose.Load() }

// SetOutput redirects log lines, which go to os.Stderr by default.
func SetOutput(w io.Writer) {
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// write prints one line while holding the output lock so concurrent
// callers never interleave.
func write(line string) {
	if !verbose.Load() {
		return
	}
	outMu.Lock()
	defer outMu.Unlock()
	io.WriteString(out, line) //nolint:errcheck
}

// Debug logs a debug-level message.
func Debug(format string, args ...any) { write("[DEBUG] " + fmt.Sprintf(format, args...) + "\n") }

// Info logs an info-level message.
func Info(format string, args ...any) { write("[INFO] " + fmt.Sprintf(format, args...) + "\n") }

// Warn logs a warning.
func Warn(format string, args ...any) { write("[WARN] " + fmt.Sprintf(format, args...) + "\n") }

// Section prints a blank line and a "=== name ===" banner.
func Section(name string) { write("\n=== " + name + " ===\n") }

// Elapsed logs how long an operation took since start, rounded to the
// microsecond. Use as: defer logger.Elapsed("chart", time.Now()).
func Elapsed(what string, start time.Time) {
	if verbose.Load() {
		Debug("%s took %s", what, time.Since(start).Round(time.Microsecond))
	}
}
