package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Initialize sets up the global logger. Production encoding when ENV=production.
func Initialize() {
	env := os.Getenv("ENV")
	var err error
	var l *zap.Logger
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l
}

// Close flushes buffered log entries.
func Close() {
	if Logger == nil {
		return
	}
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

// Global logging helpers to avoid `logger.Logger` repetition.

func Info(msg string, fields ...zapcore.Field) {
	get().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	get().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	get().Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	get().Debug(msg, fields...)
}

func get() *zap.Logger {
	if Logger == nil {
		// Tests and one-off tools may log before Initialize.
		Logger = zap.NewNop()
	}
	return Logger
}
