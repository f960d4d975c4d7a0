// Package log is the small leveled logger used by the loader, the
// bookmark watcher, and the demo CLI. Debug output is off unless
// enabled explicitly.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	isDebug           = false
)

// SetDebug toggles debug output.
func SetDebug(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	isDebug = debug
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Infof logs a formatted informational message.
func Infof(format string, args ...interface{}) {
	write("INFO", format, args...)
}

// Debugf logs a formatted message when debug output is enabled.
func Debugf(format string, args ...interface{}) {
	mu.Lock()
	enabled := isDebug
	mu.Unlock()
	if enabled {
		write("DEBUG", format, args...)
	}
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...interface{}) {
	write("WARN", format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	write("ERROR", format, args...)
}

func write(level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(out, "[%s] %s: %s\n", timestamp, level, fmt.Sprintf(format, args...))
}
