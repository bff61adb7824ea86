package main

// Debug log. Messages are grouped and timestamped, kept in a small ring for
// the in-editor log window and optionally appended to a file.

import (
	"fmt"
	"os"
	"time"
)

// Logger keeps the most recent log lines.
type Logger struct {
	messages []string
	max      int
	path     string // Append-only sink, empty when file logging is off.
	now      func() time.Time
}

// NewLogger creates a logger that keeps max messages. A non-empty path also
// appends every message to that file.
func NewLogger(max int, path string) *Logger {
	if max <= 0 {
		max = 1
	}
	return &Logger{max: max, path: path, now: time.Now}
}

// Add records msg under group.
func (l *Logger) Add(group, msg string) {
	t := l.now()
	timestamp := fmt.Sprintf("[%02d:%02d:%02d]", t.Hour(), t.Minute(), t.Second())
	logMsg := fmt.Sprintf("%s [%s] %s", timestamp, group, msg)
	l.messages = append(l.messages, logMsg)

	if len(l.messages) > l.max {
		l.messages = l.messages[len(l.messages)-l.max:]
	}

	if l.path != "" {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// Messages returns the retained messages, oldest first.
func (l *Logger) Messages() []string {
	return append([]string(nil), l.messages...)
}
