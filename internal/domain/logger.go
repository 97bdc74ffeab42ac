package domain

import (
	"context"
	"time"
)

// Logger is the structured logger every service and handler receives
type Logger interface {
	// WithField, WithFields and WithError return a child logger
	// decorated with the given fields.
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Observability extends Logger with request and timing helpers
type Observability interface {
	Logger

	Success(msg string)
	Failure(msg string)
	Benchmark(name string, duration time.Duration)
	API(method, path, ipAddress string, statusCode int, duration time.Duration)

	WithContext(ctx context.Context) Observability
}
