// Package logger provides the logging interface shared by the warpcookie
// packages and command line tool.
package logger

import (
	"fmt"
	"io"
	"log"
)

// Logger is a printf-style leveled logger.
// Implementations must never be handed cookie values.
type Logger interface {
	// Info logs a progress message (e.g., "Loaded 12 cookies").
	Info(format string, args ...interface{})

	// Warning logs a recoverable problem (e.g., "skipping malformed cookie line 4").
	Warning(format string, args ...interface{})

	// Error logs a failure of the current operation.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger. Safe to call multiple times.
	Close() error
}

// StandardLogger wraps a stdlib *log.Logger.
type StandardLogger struct {
	logger  *log.Logger
	verbose bool
	closer  io.Closer
}

// NewStandardLogger creates a logger that writes every level to l.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l, verbose: true}
}

// NewConsoleLogger creates a logger writing to w. Info messages are only
// written when verbose is set; warnings and errors always are.
func NewConsoleLogger(w io.Writer, verbose bool) *StandardLogger {
	return &StandardLogger{logger: log.New(w, "", 0), verbose: verbose}
}

// NewFileLogger creates a logger appending timestamped lines to wc, which is
// closed by Close.
func NewFileLogger(wc io.WriteCloser) *StandardLogger {
	return &StandardLogger{
		logger:  log.New(wc, "", log.LstdFlags),
		verbose: true,
		closer:  wc,
	}
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close closes the underlying writer when the logger owns one.
func (s *StandardLogger) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// NopLogger discards all messages. It is the default logger of a jar.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records every call for assertions in tests.
type MockLogger struct {
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)
