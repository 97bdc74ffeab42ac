package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"studio-site/internal/domain"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type ZLogXAdapter struct {
	*ZLogX
}

// NewAdapter builds a ZLogX from config and wraps it
func NewAdapter(config *Config) (*ZLogXAdapter, error) {
	zl, err := New(config)
	if err != nil {
		return nil, err
	}
	return &ZLogXAdapter{ZLogX: zl}, nil
}

// Discard returns an adapter that drops every entry, for tests and tools
func Discard() *ZLogXAdapter {
	l := zerolog.New(io.Discard)
	return &ZLogXAdapter{&ZLogX{Logger: &l, config: &Config{Level: "disabled"}}}
}

var (
	_ domain.Logger        = (*ZLogXAdapter)(nil)
	_ domain.Observability = (*ZLogXAdapter)(nil)
)

// Debug implements Logger.
func (s *ZLogXAdapter) Debug(args ...any) {
	s.Logger.Debug().Msg(fmt.Sprint(args...))
}

// Info implements Logger.
func (s *ZLogXAdapter) Info(args ...any) {
	s.Logger.Info().Msg(fmt.Sprint(args...))
}

// Warn implements Logger.
func (s *ZLogXAdapter) Warn(args ...any) {
	s.Logger.Warn().Msg(fmt.Sprint(args...))
}

// Error implements Logger.
func (s *ZLogXAdapter) Error(args ...any) {
	s.Logger.Error().Msg(fmt.Sprint(args...))
}

// Fatal implements Logger.
func (s *ZLogXAdapter) Fatal(args ...any) {
	s.Logger.Fatal().Msg(fmt.Sprint(args...))
}

// Debugf implements Logger.
func (s *ZLogXAdapter) Debugf(format string, args ...any) {
	s.Logger.Debug().Msgf(format, args...)
}

// Infof implements Logger.
func (s *ZLogXAdapter) Infof(format string, args ...any) {
	s.Logger.Info().Msgf(format, args...)
}

// Warnf implements Logger.
func (s *ZLogXAdapter) Warnf(format string, args ...any) {
	s.Logger.Warn().Msgf(format, args...)
}

// Errorf implements Logger.
func (s *ZLogXAdapter) Errorf(format string, args ...any) {
	s.Logger.Error().Msgf(format, args...)
}

// Fatalf implements Logger.
func (s *ZLogXAdapter) Fatalf(format string, args ...any) {
	s.Logger.Fatal().Msgf(format, args...)
}

// WithError implements Logger.
func (s *ZLogXAdapter) WithError(err error) domain.Logger {
	newLogger := s.With().Err(err).Logger()
	return s.derive(&newLogger)
}

// WithField implements Logger.
func (s *ZLogXAdapter) WithField(key string, value any) domain.Logger {
	newLogger := s.With().Interface(key, value).Logger()
	return s.derive(&newLogger)
}

// WithFields implements Logger.
func (s *ZLogXAdapter) WithFields(fields map[string]any) domain.Logger {
	newLogger := s.With().Fields(fields).Logger()
	return s.derive(&newLogger)
}

// Success implements Observability.
func (s *ZLogXAdapter) Success(msg string) {
	s.ZLogX.Success(msg)
}

// Failure implements Observability.
func (s *ZLogXAdapter) Failure(msg string) {
	s.ZLogX.Failure(msg)
}

// Benchmark implements Observability.
func (s *ZLogXAdapter) Benchmark(name string, duration time.Duration) {
	s.ZLogX.Benchmark(name, duration)
}

// API implements Observability.
func (s *ZLogXAdapter) API(method, path, remoteAddr string, statusCode int, duration time.Duration) {
	s.ZLogX.API(method, path, remoteAddr, statusCode, duration)
}

// WithContext implements Observability, tagging entries with the request id when present.
func (s *ZLogXAdapter) WithContext(ctx context.Context) domain.Observability {
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		return s
	}
	newLogger := s.With().Str("request_id", reqID).Logger()
	return s.derive(&newLogger)
}

func (s *ZLogXAdapter) derive(l *zerolog.Logger) *ZLogXAdapter {
	return &ZLogXAdapter{&ZLogX{Logger: l, config: s.config}}
}
