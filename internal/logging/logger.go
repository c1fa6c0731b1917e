// Package logging builds the harness's zap logger. Case results go to stdout
// through the reporter; the logger carries diagnostics on stderr only.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger writing to stderr. verbose lowers the level
// from warn to debug.
func New(verbose bool) (*zap.Logger, error) {
	level := NewLevel()
	SetVerbose(level, verbose)
	return NewAtLevel(level)
}

// NewLevel returns the default level, adjustable after the logger is built
func NewLevel() zap.AtomicLevel {
	return zap.NewAtomicLevelAt(zapcore.WarnLevel)
}

// SetVerbose switches level between debug and the default warn
func SetVerbose(level zap.AtomicLevel, verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.WarnLevel)
}

// NewAtLevel builds a production logger writing to stderr at level
func NewAtLevel(level zap.AtomicLevel) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = level
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
