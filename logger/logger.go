package logger

import (
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Get returns the process-wide sugared logger, building it on first use.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		l, _ := zap.NewProduction()
		sugar = l.Sugar()
	}
	return sugar
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
