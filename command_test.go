package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandQuit(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.modified = true

	ctl, err := e.commands.Handle(":q")
	require.NoError(t, err)
	assert.Equal(t, ControlExit, ctl)

	// Quitting never writes, even with unsaved changes.
	_, err = os.Stat(e.filename)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommandWrite(t *testing.T) {
	e := newTestEditor(t, "abc", "def")

	ctl, err := e.commands.Handle(":w")
	require.NoError(t, err)
	assert.Equal(t, ControlContinue, ctl)

	data, err := os.ReadFile(e.filename)
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef\n", string(data))
}

func TestCommandWriteTruncatesExistingFile(t *testing.T) {
	e := newTestEditor(t, "short")
	require.NoError(t, os.WriteFile(e.filename, []byte("a much longer previous content\n"), 0644))

	_, err := e.commands.Handle(":w")
	require.NoError(t, err)

	data, err := os.ReadFile(e.filename)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
}

func TestCommandWriteQuit(t *testing.T) {
	e := newTestEditor(t, "abc")

	ctl, err := e.commands.Handle(":wq")
	require.NoError(t, err)
	assert.Equal(t, ControlExit, ctl)

	data, err := os.ReadFile(e.filename)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(data))
}

func TestCommandWriteError(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.filename = filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")

	ctl, err := e.commands.Handle(":w")
	require.Error(t, err)
	assert.Equal(t, ControlContinue, ctl)
	assert.Contains(t, err.Error(), "failed to write")

	// :wq must not exit when the write fails.
	ctl, err = e.commands.Handle(":wq")
	require.Error(t, err)
	assert.Equal(t, ControlContinue, ctl)
}

func TestCommandSetNumber(t *testing.T) {
	e := newTestEditor(t, "abc")
	require.False(t, e.lineNumbers)

	ctl, err := e.commands.Handle(":set nu")
	require.NoError(t, err)
	assert.Equal(t, ControlContinue, ctl)
	assert.True(t, e.lineNumbers)
}

func TestCommandUnknownIsIgnored(t *testing.T) {
	for _, cmd := range []string{":", ":x", ":q!", ": q", ":set number", ":W"} {
		e := newTestEditor(t, "abc")

		ctl, err := e.commands.Handle(cmd)
		require.NoError(t, err, cmd)
		assert.Equal(t, ControlContinue, ctl, cmd)
		assert.Equal(t, []string{"abc"}, e.buffer.Lines(), cmd)

		logs := e.log.Messages()
		require.NotEmpty(t, logs)
		assert.Contains(t, logs[len(logs)-1], "ignored", cmd)
	}
}

func TestCommandThroughKeys(t *testing.T) {
	e := newTestEditor(t, "abc")

	ctl := press(t, e, append(keys(":set nu"), special(termbox.KeyEnter))...)
	assert.Equal(t, ControlContinue, ctl)
	assert.True(t, e.lineNumbers)
	assert.Equal(t, ModeNormal, e.state.Mode)

	ctl = press(t, e, append(keys(":q"), special(termbox.KeyEnter))...)
	assert.Equal(t, ControlExit, ctl)
}

func TestCommandSaveErrorPropagatesFromDispatch(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.filename = filepath.Join(t.TempDir(), "missing", "f.txt")

	for _, ev := range keys(":w") {
		_, err := e.Dispatch(ev)
		require.NoError(t, err)
	}
	_, err := e.Dispatch(special(termbox.KeyEnter))
	assert.Error(t, err)
}
