package main

// Handles drawing the splash screen that appears while the buffer is empty
// and untouched.

import (
	"github.com/nsf/termbox-go"
)

// drawIntro draws an informational box with version and basic commands.
func (e *Editor) drawIntro(s Screen) {
	w, h := s.Size()

	const (
		cTitle   = termbox.Attribute(254) | termbox.AttrBold
		cText    = termbox.Attribute(248)
		cVersion = termbox.Attribute(239)
		cKey     = termbox.Attribute(254)
	)

	lines := []struct {
		text string
		fg   termbox.Attribute
	}{
		{"tred", cTitle},
		{Version, cVersion},
		{"", cText},
		{"Small modal line editor", cText},
		{"", cText},
		{" type  i              to insert text", cKey},
		{" type  :w<Enter>      to save", cKey},
		{" type  :q<Enter>      to exit", cKey},
	}

	maxLen := 0
	for _, line := range lines {
		if len(line.text) > maxLen {
			maxLen = len(line.text)
		}
	}

	// Center the box in the text area.
	startX := (w - maxLen) / 2
	startY := (h - reservedLines - len(lines)) / 2
	if startX < 0 || startY < 0 {
		return
	}

	_, bg := GetThemeColor(ColorDefault)
	for i, line := range lines {
		lineX := startX + (maxLen-len(line.text))/2
		drawText(s, lineX, startY+i, w, line.text, line.fg, bg)
	}
}
