package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)
}

func TestLoggerFormat(t *testing.T) {
	l := NewLogger(5, "")
	l.now = fixedClock

	l.Add("Editor", "hello")
	assert.Equal(t, []string{"[09:05:07] [Editor] hello"}, l.Messages())
}

func TestLoggerKeepsMostRecent(t *testing.T) {
	l := NewLogger(3, "")
	l.now = fixedClock

	for _, m := range []string{"a", "b", "c", "d", "e"} {
		l.Add("G", m)
	}

	msgs := l.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, strings.HasSuffix(msgs[0], "c"))
	assert.True(t, strings.HasSuffix(msgs[2], "e"))
}

func TestLoggerMinimumCapacity(t *testing.T) {
	l := NewLogger(0, "")
	l.Add("G", "a")
	l.Add("G", "b")
	assert.Len(t, l.Messages(), 1)
}

func TestLoggerFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l := NewLogger(1, path)
	l.now = fixedClock

	l.Add("Editor", "first")
	l.Add("Command", "second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[09:05:07] [Editor] first\n[09:05:07] [Command] second\n", string(data))
}
