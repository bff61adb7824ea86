package main

// Color palette and theme used by the editor. Maps semantic color names (like
// ColorNormalMode) to specific terminal attributes (foreground and background).

import "github.com/nsf/termbox-go"

// To see the theme execute `tred -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	ColorStatusBar           // Main status bar at the bottom.
	ColorDebugWindow         // Overlay window for logs.
	ColorDebugTitle          // Header for the debug window.
	ColorNormalMode          // Status bar indicator for Normal mode.
	ColorInsertMode          // Status bar indicator for Insert mode.
	ColorCommandMode         // Status bar indicator for Command mode.
	ColorVisualMode          // Status bar indicator for Visual mode.
	ColorPendingChord        // Status bar indicator for a half-typed chord.
	ColorHighlightedLine     // Background for the line where the cursor is.
	ColorVisualModeSelection // Selection color in visual mode.
	ColorGutterLineNumber    // Line numbers in the left gutter.
	ColorGutterCurrentLine   // Line number of the cursor row.
	ColorEmptyLineMarker     // The '~' marker for lines beyond EOF.
)

// colorNames labels every theme entry for the -colors preview.
var colorNames = map[ColorName]string{
	ColorDefault:             "default",
	ColorStatusBar:           "status bar",
	ColorDebugWindow:         "debug window",
	ColorDebugTitle:          "debug title",
	ColorNormalMode:          "normal mode",
	ColorInsertMode:          "insert mode",
	ColorCommandMode:         "command mode",
	ColorVisualMode:          "visual mode",
	ColorPendingChord:        "pending chord",
	ColorHighlightedLine:     "highlighted line",
	ColorVisualModeSelection: "visual selection",
	ColorGutterLineNumber:    "gutter",
	ColorGutterCurrentLine:   "gutter current line",
	ColorEmptyLineMarker:     "empty line marker",
}

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	// Status bar
	ColorStatusBar: {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},

	// Debug window
	ColorDebugWindow: {Background: termbox.Attribute(19), Foreground: termbox.Attribute(16)},
	ColorDebugTitle:  {Background: termbox.Attribute(19), Foreground: termbox.Attribute(215)},

	// Mode indicators
	ColorNormalMode:   {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorInsertMode:   {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorCommandMode:  {Background: termbox.Attribute(125), Foreground: termbox.Attribute(255)},
	ColorVisualMode:   {Background: termbox.Attribute(30), Foreground: termbox.Attribute(16)},
	ColorPendingChord: {Background: termbox.Attribute(221), Foreground: termbox.Attribute(1)},

	// Text area
	ColorHighlightedLine:     {Background: termbox.Attribute(235), Foreground: termbox.ColorDefault},
	ColorVisualModeSelection: {Background: termbox.Attribute(46), Foreground: termbox.Attribute(1)},
	ColorGutterLineNumber:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorGutterCurrentLine:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},
	ColorEmptyLineMarker:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}

// modeColor picks the status bar indicator color for a state.
func modeColor(s State) ColorName {
	if s.Pending != PendingNone {
		return ColorPendingChord
	}
	switch s.Mode {
	case ModeInsert:
		return ColorInsertMode
	case ModeCommand:
		return ColorCommandMode
	case ModeVisual:
		return ColorVisualMode
	}
	return ColorNormalMode
}
