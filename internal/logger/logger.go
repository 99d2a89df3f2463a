// Package logger provides leveled logging for the pdfwords CLI.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed to stderr to help users follow the extraction
// pipeline. Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(w)
}

// Output returns the current log writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return log.Out
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debugf(format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Infof(format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Warnf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(log.Out, "\n=== %s ===\n", name)
	}
}

// With returns an entry carrying structured fields.
// Entries honour the verbose level like the package functions.
func With(fields map[string]any) *logrus.Entry {
	mu.RLock()
	defer mu.RUnlock()
	return log.WithFields(logrus.Fields(fields))
}
