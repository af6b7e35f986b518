package log

import (
	"fmt"
	"strings"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var levelNames = [...]string{
	LogLevelError: "error",
	LogLevelWarn:  "warn",
	LogLevelInfo:  "info",
	LogLevelDebug: "debug",
	LogLevelTrace: "trace",
}

func (level LogLevel) String() string {
	if level < LogLevelError || int(level) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[level]
}

// ParseLogLevel parses a log level flag value. Case and surrounding space are ignored,
// and "warning" is accepted for warn.
func ParseLogLevel(level string) (LogLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "warning" {
		return LogLevelWarn, nil
	}
	for i, name := range levelNames {
		if name == normalized {
			return LogLevel(i), nil
		}
	}
	return LogLevelError, fmt.Errorf("unknown log level: %s", level)
}
