package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboardSet(t *testing.T) {
	c := NewClipboard(false)
	assert.True(t, c.Register().Empty())

	require.NoError(t, c.Set([]string{"abc"}, false))
	assert.Equal(t, Register{Lines: []string{"abc"}}, c.Register())

	require.NoError(t, c.Set([]string{"abc"}, true))
	assert.True(t, c.Register().Linewise)

	// More than one line is always line-wise.
	require.NoError(t, c.Set([]string{"a", "b"}, false))
	assert.Equal(t, Register{Lines: []string{"a", "b"}, Linewise: true}, c.Register())
}

func TestClipboardIsolation(t *testing.T) {
	c := NewClipboard(false)
	lines := []string{"a", "b"}
	require.NoError(t, c.Set(lines, true))

	lines[0] = "changed"
	reg := c.Register()
	reg.Lines[1] = "changed"

	assert.Equal(t, []string{"a", "b"}, c.Register().Lines)
}

func TestClipboardMirror(t *testing.T) {
	var got []string
	c := &Clipboard{mirror: func(s string) error {
		got = append(got, s)
		return nil
	}}

	require.NoError(t, c.Set([]string{"word"}, false))
	require.NoError(t, c.Set([]string{"one", "two"}, true))

	assert.Equal(t, []string{"word", "one\ntwo\n"}, got)
}

func TestClipboardMirrorErrorKeepsRegister(t *testing.T) {
	c := &Clipboard{mirror: func(string) error { return errors.New("no display") }}

	err := c.Set([]string{"abc"}, true)
	assert.Error(t, err)
	assert.Equal(t, []string{"abc"}, c.Register().Lines)
}

func TestEditorLogsMirrorFailure(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.clipboard.mirror = func(string) error { return errors.New("no display") }

	press(t, e, keys("yy")...)

	assert.Equal(t, []string{"abc"}, e.clipboard.Register().Lines)
	logs := e.log.Messages()
	assert.Contains(t, logs[len(logs)-1], "[Clipboard]")
}
