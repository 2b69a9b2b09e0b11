package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func enableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

func consoleEncoder(stream *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if enableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

// PrepareLogger returns console logger writing errors to stderr and
// everything else permitted by level to stdout.
func PrepareLogger(level string) *zap.Logger {
	var lowest zapcore.Level
	switch level {
	case "debug":
		lowest = zapcore.DebugLevel
	case "normal":
		lowest = zapcore.InfoLevel
	default:
		return zap.NewNop()
	}
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lowest <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr), highPriority),
	)
	return zap.New(core)
}
