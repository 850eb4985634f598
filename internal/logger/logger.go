// Package logger provides verbose logging for xdxfgen.
// When verbose mode is enabled via the --verbose flag, debug messages
// (including every annotated definition) are printed to stderr. Markup
// always goes to stdout, so logs never mix with the generated fragments.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu       sync.RWMutex
	verbose  bool
	progress bool
	output   io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetProgress enables single-line progress updates.
// The CLI turns it on only when stderr is a terminal.
func SetProgress(p bool) {
	mu.Lock()
	defer mu.Unlock()
	progress = p
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func printf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	printf("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	printf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	printf("WARN", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Progress rewrites the current stderr line. It is silent in verbose mode,
// where the log lines already show what is happening.
func Progress(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if progress && !verbose {
		fmt.Fprintf(output, "\r"+format, args...)
	}
}

// EndProgress terminates a progress line.
func EndProgress() {
	mu.RLock()
	defer mu.RUnlock()
	if progress && !verbose {
		fmt.Fprintln(output)
	}
}
