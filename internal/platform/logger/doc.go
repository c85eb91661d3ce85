// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Records logged with a context that carries a
// trace ID (see WithTraceID) automatically include a trace_id attribute.
package logger
