// Package logger provides logging functionality for dotnet-prune.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing one line per message.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// VerbosePrefix starts every line written by a verbose logger.
const VerbosePrefix = "[VERBOSE] "

// NewVerboseLogger creates a logger that writes to out with a [VERBOSE] prefix.
func NewVerboseLogger(out io.Writer) Logger {
	return NewWriterLogger(out, VerbosePrefix)
}

// NewWriterLogger creates a logger that writes prefixed lines to out.
func NewWriterLogger(out io.Writer, prefix string) Logger {
	return &writerLogger{out: out, prefix: prefix}
}

// Logf writes a formatted message with thread safety.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, w.prefix+format+"\n", args...)
}
