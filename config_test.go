package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tred", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestInitConfigDefaults(t *testing.T) {
	withConfig(t, func(*Configuration) {})

	paths, err := InitConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 7, Config.GutterWidth)
	assert.Equal(t, "untitled.txt", Config.PlaceholderPath)
	assert.False(t, Config.LineNumbers)
}

func TestInitConfigFlags(t *testing.T) {
	withConfig(t, func(*Configuration) {})

	paths, err := InitConfig(newFlagSet(), []string{
		"-gutter-width", "4", "-number", "-placeholder", "scratch.txt", "-dev", "notes.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, paths)
	assert.Equal(t, 4, Config.GutterWidth)
	assert.True(t, Config.LineNumbers)
	assert.Equal(t, "scratch.txt", Config.PlaceholderPath)
	assert.True(t, Config.DevMode)
}

func TestInitConfigRelativeImpliesNumbers(t *testing.T) {
	withConfig(t, func(*Configuration) {})

	_, err := InitConfig(newFlagSet(), []string{"-relative-number"})
	require.NoError(t, err)
	assert.True(t, Config.RelativeNumbers)
	assert.True(t, Config.LineNumbers)
}

func TestInitConfigNegativeGutter(t *testing.T) {
	withConfig(t, func(*Configuration) {})

	_, err := InitConfig(newFlagSet(), []string{"-gutter-width", "-3"})
	require.NoError(t, err)
	assert.Equal(t, 0, Config.GutterWidth)
}

func TestInitConfigUnknownFlag(t *testing.T) {
	withConfig(t, func(*Configuration) {})

	_, err := InitConfig(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
}

func TestRunVersion(t *testing.T) {
	withConfig(t, func(*Configuration) {})
	assert.NoError(t, run([]string{"-version"}))
}

func TestRunRejectsSeveralPaths(t *testing.T) {
	withConfig(t, func(*Configuration) {})
	err := run([]string{"a.txt", "b.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one path")
}

func TestRunHelp(t *testing.T) {
	withConfig(t, func(*Configuration) {})
	// -h prints usage to stderr and is not an error.
	assert.NoError(t, run([]string{"-h"}))
}
