package main

// The entry point of the editor. It parses flags, loads the file, puts the
// terminal into raw/alternate-screen mode for the whole session and runs the
// event loop.

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tred: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tred", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: tred [flags] [path]\n")
		fs.PrintDefaults()
	}
	paths, err := InitConfig(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return nil
	}
	if len(paths) > 1 {
		return fmt.Errorf("expected at most one path, got %d", len(paths))
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	if Config.ShowColors {
		return PrintColors()
	}

	logPath := ""
	if Config.UseLogFile {
		logPath = Config.LogFilePath
	}
	editor := NewEditor(Config.PlaceholderPath, NewLogger(Config.NumLogMessages, logPath))

	// A path that cannot be read stops the session before the terminal is touched.
	if len(paths) == 1 {
		if err := editor.LoadFile(paths[0]); err != nil {
			return err
		}
	}

	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init termbox: %w", err)
	}
	// Restores the terminal on every exit path, including panics.
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)
	// Use 256 color mode for the theme.
	termbox.SetOutputMode(termbox.Output256)

	return editor.HandleEvents(termboxScreen{}, termbox.PollEvent)
}
