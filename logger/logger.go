package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

type Logger struct {
	level          Level
	componentLevel map[string]Level
	logger         *log.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(INFO)
}

// New creates a logger writing to stderr at the given level.
func New(level Level) *Logger {
	return &Logger{
		level:          level,
		componentLevel: map[string]Level{},
		logger:         log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetLevel sets the default logger level.
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetComponentLevels installs per-component level overrides. Keys match the
// [component] prefix used in log messages (e.g. "session", "lockdown").
func SetComponentLevels(levels map[string]Level) {
	defaultLogger.componentLevel = levels
}

// component returns the name from a "[component] ..." message, or "".
func component(msg string) string {
	if len(msg) < 3 || msg[0] != '[' {
		return ""
	}
	end := strings.IndexByte(msg[1:], ']')
	if end < 0 {
		return ""
	}
	return msg[1 : end+1]
}

func (l *Logger) shouldLog(level Level, msg string) bool {
	if c := component(msg); c != "" {
		if override, ok := l.componentLevel[c]; ok {
			return level >= override
		}
	}
	return level >= l.level
}

func (l *Logger) format(level Level, msg string) string {
	return fmt.Sprintf("[%s] %s", levelNames[level], msg)
}

func (l *Logger) log(level Level, msg string, args ...interface{}) {
	if !l.shouldLog(level, msg) {
		return
	}
	l.logger.Println(l.format(level, fmt.Sprintf(msg, args...)))
}

// Debug logs a debug message.
func Debug(msg string, args ...interface{}) {
	defaultLogger.log(DEBUG, msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...interface{}) {
	defaultLogger.log(INFO, msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...interface{}) {
	defaultLogger.log(WARN, msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...interface{}) {
	defaultLogger.log(ERROR, msg, args...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, args ...interface{}) {
	defaultLogger.logger.Fatalln(defaultLogger.format(FATAL, fmt.Sprintf(msg, args...)))
}
