// Package log provides the leveled logger used by the wren server.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the log level.
type Level int8

const (
	// DebugLevel defines debug log level.
	DebugLevel Level = iota
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// FatalLevel defines fatal log level.
	FatalLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// String returns the string representation of the log level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", l)
}

// Logger writes leveled log lines to a single output writer.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	level      Level
	timeFormat string
}

// New creates a new logger writing to out at the given level. A nil out
// discards everything.
func New(out io.Writer, level Level) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		out:        out,
		level:      level,
		timeFormat: "2006-01-02 15:04:05",
	}
}

// SetOutput replaces the logger's output writer.
func (l *Logger) SetOutput(out io.Writer) {
	l.mu.Lock()
	l.out = out
	l.mu.Unlock()
}

// SetLevel sets the log level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	return l.level
}

// Debug returns a debug level event.
func (l *Logger) Debug() *Event { return l.newEvent(DebugLevel) }

// Info returns an info level event.
func (l *Logger) Info() *Event { return l.newEvent(InfoLevel) }

// Warn returns a warn level event.
func (l *Logger) Warn() *Event { return l.newEvent(WarnLevel) }

// Error returns an error level event.
func (l *Logger) Error() *Event { return l.newEvent(ErrorLevel) }

// Fatal returns a fatal level event. Its Msg call exits the process.
func (l *Logger) Fatal() *Event { return l.newEvent(FatalLevel) }

// eventPool reuses Event objects across log calls.
var eventPool = sync.Pool{
	New: func() interface{} {
		return &Event{}
	},
}

func (l *Logger) newEvent(level Level) *Event {
	e := eventPool.Get().(*Event)
	e.logger = l
	e.level = level
	e.err = nil
	return e
}

// Event is a single in-flight log statement. An Event is finalized by Msg
// or Msgf and must not be reused afterwards.
type Event struct {
	logger *Logger
	level  Level
	err    error
}

// Err attaches an error to the event.
func (e *Event) Err(err error) *Event {
	e.err = err
	return e
}

// Msg logs the event with the given message.
func (e *Event) Msg(msg string) {
	e.write(msg)
}

// Msgf logs the event with a formatted message.
func (e *Event) Msgf(format string, v ...interface{}) {
	e.write(fmt.Sprintf(format, v...))
}

func (e *Event) write(msg string) {
	l, level, err := e.logger, e.level, e.err
	eventPool.Put(e)

	if level < l.level {
		return
	}

	l.mu.Lock()
	ts := time.Now().Format(l.timeFormat)
	if err != nil {
		fmt.Fprintf(l.out, "%s | %s | %s error=%q\n", ts, level, msg, err.Error())
	} else {
		fmt.Fprintf(l.out, "%s | %s | %s\n", ts, level, msg)
	}
	l.mu.Unlock()

	if level == FatalLevel {
		os.Exit(1)
	}
}

// defaultLogger is the package-level logger backing the global functions.
var defaultLogger = New(DefaultConsoleWriter(), InfoLevel)

// SetOutput replaces the default logger's output writer.
func SetOutput(out io.Writer) {
	defaultLogger.SetOutput(out)
}

// SetLevel sets the default logger's level.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// GetLevel returns the default logger's level.
func GetLevel() Level {
	return defaultLogger.GetLevel()
}

// Debug returns a debug level event on the default logger.
func Debug() *Event { return defaultLogger.Debug() }

// Info returns an info level event on the default logger.
func Info() *Event { return defaultLogger.Info() }

// Warn returns a warn level event on the default logger.
func Warn() *Event { return defaultLogger.Warn() }

// Error returns an error level event on the default logger.
func Error() *Event { return defaultLogger.Error() }

// Fatal returns a fatal level event on the default logger.
func Fatal() *Event { return defaultLogger.Fatal() }
