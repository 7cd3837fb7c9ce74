package storage

import (
	"fmt"
	"log/slog"
	"strings"
)

// badgerLogger forwards badger's printf-style logging to slog.
type badgerLogger struct {
	l *slog.Logger
}

func newBadgerLogger(l *slog.Logger) *badgerLogger {
	return &badgerLogger{l: l.With("component", "badger")}
}

func msg(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(msg(format, args))
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(msg(format, args))
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Info(msg(format, args))
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(msg(format, args))
}
