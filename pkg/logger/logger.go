package logger

import (
	"go.uber.org/zap"
)

// Logger exposes printf-style logging backed by zap.
type Logger struct {
	sugar *zap.SugaredLogger
}

func New() *Logger {
	zl, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}
	return &Logger{sugar: zl.Sugar()}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered log entries; call before process exit.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
