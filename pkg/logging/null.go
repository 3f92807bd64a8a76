package logging

import "context"

// NullLogger discards every entry. It is used whenever logging is disabled.
type NullLogger struct{}

var _ Logger = NullLogger{}

// NewNullLogger returns a logger that discards everything
func NewNullLogger() Logger {
	return NullLogger{}
}

func (NullLogger) Debug(context.Context, string, Fields)        {}
func (NullLogger) Info(context.Context, string, Fields)         {}
func (NullLogger) Warn(context.Context, string, Fields)         {}
func (NullLogger) Error(context.Context, string, error, Fields) {}

// WithFields returns the receiver; there is nothing to annotate
func (n NullLogger) WithFields(Fields) Logger { return n }

func (NullLogger) Close() error { return nil }
