package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// DefaultLoggerFlag is the flag set used by the default logger.
	DefaultLoggerFlag = log.Ldate | log.Ltime
)

var (
	defaultLogger *Logger
	defaultLock   sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, "", DefaultLoggerFlag, LogLevelInfo)
}

// SetDefaultLogger replaces the logger used by the package level functions.
func SetDefaultLogger(logger *Logger) {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	defaultLogger = logger
}

func getDefaultLogger() *Logger {
	defaultLock.RLock()
	defer defaultLock.RUnlock()
	return defaultLogger
}

// Scoped returns a child of the current default logger that tags every line with scope.
// Call it after SetDefaultLogger, since the child keeps the logger it was made from.
func Scoped(scope string) *Logger {
	return getDefaultLogger().Scoped(scope)
}

// Logger writes one JSON object per line: {"level":..,"scope":..,"msg":..}.
type Logger struct {
	out   *log.Logger
	scope string

	mu    sync.RWMutex
	level LogLevel
}

type entry struct {
	Level string `json:"level"`
	Scope string `json:"scope,omitempty"`
	Msg   string `json:"msg"`
}

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		out:   log.New(out, prefix, flag),
		level: level,
	}
}

// Scoped returns a logger sharing l's output and current level, tagged with scope.
func (l *Logger) Scoped(scope string) *Logger {
	return &Logger{
		out:   l.out,
		scope: scope,
		level: l.Level(),
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.Level() {
		return
	}
	line, err := json.Marshal(entry{
		Level: level.String(),
		Scope: l.scope,
		Msg:   fmt.Sprintf(format, args...),
	})
	if err != nil {
		return
	}
	l.out.Print(string(line))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

func Info(format string, args ...interface{}) {
	getDefaultLogger().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	getDefaultLogger().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	getDefaultLogger().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	getDefaultLogger().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	getDefaultLogger().Trace(format, args...)
}
