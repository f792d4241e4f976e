package dependence

import "go.uber.org/zap"

// Logger encapsulates a Logger and module which it belongs to.
// Use this through SetLogger() of Engine.
type Logger struct {
	*zap.SugaredLogger
	module string
}

// NewLogger wraps l for use with SetLogger.
func NewLogger(l *zap.SugaredLogger) *Logger {
	return &Logger{SugaredLogger: l}
}

// NopLogger returns a Logger that discards all messages.
func NopLogger() *Logger {
	return NewLogger(zap.NewNop().Sugar())
}

// WithModule returns a Logger writing to the same output as l for module.
func (l *Logger) WithModule(module string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger, module: module}
}

// LogSetter is implemented by analysers which log through a Logger.
type LogSetter interface {
	SetLogger(*Logger)
}

// Module returns (stylised) module name.
func (l *Logger) Module() string {
	return l.module
}
