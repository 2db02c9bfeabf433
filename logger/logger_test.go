package logger

import (
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		messageLevel Level
		shouldLog    bool
	}{
		{"DEBUG logs at DEBUG level", DEBUG, DEBUG, true},
		{"INFO logs at DEBUG level", DEBUG, INFO, true},
		{"DEBUG doesn't log at INFO level", INFO, DEBUG, false},
		{"ERROR logs at INFO level", INFO, ERROR, true},
		{"WARN doesn't log at ERROR level", ERROR, WARN, false},
		{"ERROR logs at ERROR level", ERROR, ERROR, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			result := logger.shouldLog(tt.messageLevel, "plain message")
			if result != tt.shouldLog {
				t.Errorf("shouldLog(%v) = %v, want %v", tt.messageLevel, result, tt.shouldLog)
			}
		})
	}
}

func TestLoggerComponentOverride(t *testing.T) {
	logger := New(WARN)
	logger.componentLevel = map[string]Level{"session": DEBUG}

	if !logger.shouldLog(DEBUG, "[session] capability probe") {
		t.Error("DEBUG message for overridden component should log")
	}
	if logger.shouldLog(DEBUG, "[lockdown] flags updated") {
		t.Error("DEBUG message for non-overridden component should not log at WARN")
	}
	if logger.shouldLog(DEBUG, "no component prefix") {
		t.Error("DEBUG message without prefix should not log at WARN")
	}
}

func TestExtractComponent(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"[session] hello", "session"},
		{"[a] x", "a"},
		{"no prefix", ""},
		{"[unterminated", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := component(tt.msg); got != tt.want {
			t.Errorf("component(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	logger := New(INFO)
	formatted := logger.format(INFO, "test message")

	if !strings.Contains(formatted, "[INFO ]") {
		t.Errorf("formatted message should contain '[INFO ]', got: %s", formatted)
	}
	if !strings.Contains(formatted, "test message") {
		t.Errorf("formatted message should contain 'test message', got: %s", formatted)
	}
}

func TestLevelNames(t *testing.T) {
	tests := map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO ",
		WARN:  "WARN ",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	for level, expected := range tests {
		if levelNames[level] != expected {
			t.Errorf("levelNames[%d] = %s, want %s", level, levelNames[level], expected)
		}
	}
}
