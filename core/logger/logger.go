package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default to a development logger so early callers (config load, DB init)
	// always have a sink. Init replaces it once config is known.
	l, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init configures the global logger. env is "production" or anything else
// (treated as development).
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		l, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		return
	}
	sugar = l.Sugar()
}

// normalize lets callers pass either a bare error or key-value pairs:
//
//	logger.Error("EventRepository:Create:Error:", err)
//	logger.Info("Database initialized", "host", host, "port", port)
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
	}
	return args
}

func Debug(msg string, args ...any) {
	sugar.Debugw(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	sugar.Infow(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	sugar.Warnw(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	sugar.Errorw(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	sugar.Fatalw(msg, normalize(args)...)
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = sugar.Sync()
}
