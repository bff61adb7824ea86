package main

// Theme preview. Draws every semantic theme color as a labelled swatch so the
// palette can be checked against the terminal in use.

import (
	"fmt"
	"sort"

	"github.com/nsf/termbox-go"
)

// drawThemePreview paints one line per theme entry.
func drawThemePreview(s Screen) {
	_, defaultBg := GetThemeColor(ColorDefault)
	s.Clear(termbox.ColorDefault, defaultBg)
	w, _ := s.Size()

	names := make([]ColorName, 0, len(Theme))
	for name := range Theme {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for y, name := range names {
		fg, bg := GetThemeColor(name)
		label := fmt.Sprintf(" %-20s fg %3d bg %3d ", colorNames[name], int(fg), int(bg))
		drawText(s, 0, y, w, label, fg, bg)
	}

	fg, _ := GetThemeColor(ColorDefault)
	drawText(s, 0, len(names)+1, w, "Press any key to exit...", fg, defaultBg)
	s.Flush()
}

// PrintColors initializes termbox, shows the theme preview and waits for a key.
func PrintColors() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init termbox: %w", err)
	}
	defer termbox.Close()

	// Enable 256-color mode for the output.
	termbox.SetOutputMode(termbox.Output256)
	drawThemePreview(termboxScreen{})

	// Wait for any key press before closing.
	termbox.PollEvent()
	return nil
}
