// Package logging is the process-wide logger. Everything logs through the
// helpers here; go.uber.org/zap stays an implementation detail of this package.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zap.NewNop()
)

// Init configures the logger. Warnings and errors go to stderr (everything
// when debug is set); when logPath is non-empty every entry at info level or
// above is also appended to that file as JSON.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	consoleLevel := zapcore.WarnLevel
	fileLevel := zapcore.InfoLevel
	if debug {
		consoleLevel = zapcore.DebugLevel
		fileLevel = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), consoleLevel),
	}

	if logPath = strings.TrimSpace(logPath); logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(file), fileLevel))
	}

	logger = zap.New(zapcore.NewTee(cores...)).Named("airo")
	return nil
}

// Close flushes the logger and releases the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	_ = logger.Sync()
	logger = zap.NewNop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current logger for callers that want structured fields.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent logs an informational message.
func LogEvent(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

// LogDebug logs a debug message.
func LogDebug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// LogWarn logs a warning.
func LogWarn(format string, args ...any) {
	Logger().Warn(fmt.Sprintf(format, args...))
}

// LogExport records one step of a report export.
func LogExport(stage, subject, file string, payload any) {
	Logger().Info("export", exportFields(stage, subject, file, payload)...)
}

func exportFields(stage, subject, file string, payload any) []zap.Field {
	st := strings.ToUpper(strings.TrimSpace(stage))
	if st == "" {
		st = "UNKNOWN"
	}
	subj := strings.TrimSpace(subject)
	if subj == "" {
		subj = "unknown"
	}
	fields := []zap.Field{zap.String("stage", st), zap.String("subject", subj)}
	if file = strings.TrimSpace(file); file != "" {
		fields = append(fields, zap.String("file", file))
	}
	return append(fields, zap.String("payload", formatPayload(payload)))
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
