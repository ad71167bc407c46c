// Package logging builds the zap loggers used by the attract binaries
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "attract.log"

	// maxLogSize triggers rotation of the previous run's file
	maxLogSize = 10 * 1024 * 1024
)

// Config selects level and encoding
type Config struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// New builds a logger writing to stderr
func New(cfg Config) (*zap.Logger, error) {
	return zapConfig(cfg).Build()
}

// Setup returns a logger for a full-screen host, which cannot share stdout or stderr
// Without debug the logger is a no-op and the returned file is nil
// With debug output goes to logs/attract.log; the caller closes the file
func Setup(debug bool, cfg Config) (*zap.Logger, *os.File, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	zc := zapConfig(cfg)
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zc.EncoderConfig)
	} else {
		// No ANSI colour in files
		ec := zc.EncoderConfig
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zc.Level)
	return zap.New(core), f, nil
}

func zapConfig(cfg Config) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), "attract-"+stamp+".log")
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
