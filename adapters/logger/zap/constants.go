package zap

import (
	"go.uber.org/zap"
)

const callerSkip = 1

const (
	LevelError = zap.ErrorLevel
	LevelWarn  = zap.WarnLevel
	LevelInfo  = zap.InfoLevel
	LevelDebug = zap.DebugLevel
)

func parseLevel(level string) zap.AtomicLevel {
	switch level {
	case "error":
		return zap.NewAtomicLevelAt(LevelError)
	case "info":
		return zap.NewAtomicLevelAt(LevelInfo)
	case "debug":
		return zap.NewAtomicLevelAt(LevelDebug)
	default: // warn
		return zap.NewAtomicLevelAt(LevelWarn)
	}
}
