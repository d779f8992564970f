package log

// PrintfAdapter exposes a Logger through the Printf-style interface that
// libraries such as gnet expect for their internal logging.
type PrintfAdapter struct {
	logger *Logger
}

// NewPrintfAdapter wraps l in a PrintfAdapter. A nil l uses the default
// logger.
func NewPrintfAdapter(l *Logger) *PrintfAdapter {
	if l == nil {
		l = defaultLogger
	}
	return &PrintfAdapter{logger: l}
}

// Debugf logs a formatted debug message.
func (a *PrintfAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug().Msgf(format, args...)
}

// Infof logs a formatted info message.
func (a *PrintfAdapter) Infof(format string, args ...interface{}) {
	a.logger.Info().Msgf(format, args...)
}

// Warnf logs a formatted warn message.
func (a *PrintfAdapter) Warnf(format string, args ...interface{}) {
	a.logger.Warn().Msgf(format, args...)
}

// Errorf logs a formatted error message.
func (a *PrintfAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Error().Msgf(format, args...)
}

// Fatalf logs a formatted fatal message and exits the process.
func (a *PrintfAdapter) Fatalf(format string, args ...interface{}) {
	a.logger.Fatal().Msgf(format, args...)
}
