// Package logging builds the zap loggers used by the command and the sweep runner.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Format is the output format (json, console)
	Format string `yaml:"format"`

	// Output is the output destination (stdout, stderr, file path)
	Output string `yaml:"output"`
}

// DefaultConfig returns the console logger writing info and above to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// New builds a logger from cfg. An unknown level falls back to info.
// The returned func closes the output and must be called once the logger is done.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	// stdout, stderr or a file path
	ws, closeOutput, err := zap.Open(output)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}

	return zap.New(zapcore.NewCore(encoder, ws, level), zap.AddCaller()), closeOutput, nil
}
