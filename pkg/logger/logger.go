package logger

import "fmt"

// Printf-style facade over the structured logger for wiring code that
// predates the structured fields.

// Init sets up the default logger before config is loaded
func Init() {
	InitStructured("production")
}

// Info logs a formatted info message
func Info(format string, args ...interface{}) {
	zlog.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msg(fmt.Sprintf(format, args...))
}
