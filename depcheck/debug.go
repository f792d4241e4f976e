//go:build debug
// +build debug

package depcheck

import (
	"log"

	"github.com/nickng/loopdep/dependence"
	"go.uber.org/zap"
)

// newLogger returns a new logger with default options.
func newLogger() *dependence.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return dependence.NewLogger(l.Sugar())
}

// newFileLogger returns a new logger which logs the analysis trace and also
// writes the log output to files.
func newFileLogger(files ...string) *dependence.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = append(cfg.OutputPaths, files...)
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return dependence.NewLogger(l.Sugar())
}
