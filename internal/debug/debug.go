// Package debug provides the process-wide debug logger used by --debug.
package debug

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	logger  = zap.NewNop()
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored level names
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetLogger replaces the underlying logger. Intended for tests that
// observe log output; passing nil restores the configured logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		rebuild()
		return
	}
	enabled = true
	logger = l
}

// L returns the current logger. It is a no-op logger while debug is off.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// rebuild must be called with mu held.
func rebuild() {
	if !enabled {
		logger = zap.NewNop()
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if noColor {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// Debug logs a printf-style debug message
func Debug(format string, args ...interface{}) {
	l := L()
	if ce := l.Check(zapcore.DebugLevel, ""); ce == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// DebugSection logs a section header
func DebugSection(section string) {
	L().Debug("=== " + section + " ===")
}

// DebugValue logs a key=value pair
func DebugValue(key string, value interface{}) {
	L().Debug(key, zap.Any("value", value))
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}
