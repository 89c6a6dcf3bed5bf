// Package logging provides loggers scoped to functional modules and carried
// through context, keeping the backend choice out of the packages that emit
// log messages.
package logging

import "context"

// Logger emits log messages for a single module.
type Logger interface {
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// LoggerForModuleFunc returns a logger for the given module name.
type LoggerForModuleFunc func(module string) Logger

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a derived context with the associated logger factory.
func WithLogger(ctx context.Context, l LoggerForModuleFunc) context.Context {
	if l == nil {
		l = getNullLogger
	}

	return context.WithValue(ctx, loggerKey, l)
}

// Module returns a function that retrieves the named module's logger from a
// context. Contexts without a logger attached yield a null logger.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if l, ok := ctx.Value(loggerKey).(LoggerForModuleFunc); ok {
			return l(module)
		}

		return nullLogger{}
	}
}
