// Package telemetry wraps logrus with the structured fields the
// scheduler and CLI attach to every line: a session id correlating one
// World's lifetime across log output, plus the tick/entity context a
// caller supplies per call.
package telemetry

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is a thin, fields-first wrapper around a *logrus.Logger.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to stderr in text format, tagged with a
// fresh session id so concurrent CLI runs can be told apart in
// aggregated log output.
func New(level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{entry: base.WithField("session", uuid.New().String())}
}

// WithTick returns a logger scoped to a tick number.
func (l *Logger) WithTick(tick uint64) *Logger {
	return &Logger{entry: l.entry.WithField("tick", tick)}
}

// WithEntity returns a logger scoped to an entity id.
func (l *Logger) WithEntity(id uint32) *Logger {
	return &Logger{entry: l.entry.WithField("entity_id", id)}
}

// Debugf logs instruction-level detail; off by default.
func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }

// Infof logs tick/scheduler-level events.
func (l *Logger) Infof(format string, args ...any) { l.entry.Infof(format, args...) }

// Warnf logs a recoverable anomaly (e.g. a callback failing to find an
// expected neighbour).
func (l *Logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

// Errorf logs a host-level error (never raised by the engine itself,
// which has no error-return channel of its own).
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
