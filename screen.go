package main

// The terminal cell grid the renderer paints into. The real implementation
// forwards to termbox; tests substitute an in-memory grid.

import "github.com/nsf/termbox-go"

// Screen is the drawing surface used by the renderer.
type Screen interface {
	Size() (int, int)
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	SetCursor(x, y int)
	Flush() error
}

// termboxScreen draws to the terminal through termbox.
type termboxScreen struct{}

func (termboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error {
	return termbox.Clear(fg, bg)
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) SetCursor(x, y int) {
	termbox.SetCursor(x, y)
}

func (termboxScreen) Flush() error {
	return termbox.Flush()
}
