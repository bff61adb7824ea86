package main

// Modal state machine. Transition decodes one key event against the current
// state into a new state plus a list of effects; it never touches the buffer.
// The session interprets the effects (see kevent.go).

import (
	"unicode"

	"github.com/nsf/termbox-go"
)

// Mode represents the current operational state of the editor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand // Colon command line mode
	ModeVisual  // Selection anchored where 'v' was pressed
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	case ModeVisual:
		return "VISUAL"
	}
	return "NORMAL"
}

// Pending is the chord sub-state of Normal mode.
type Pending int

const (
	PendingNone Pending = iota
	PendingCut          // 'd' pressed, waiting for d/j/k
	PendingCopy         // 'y' pressed, waiting for y/j/k
)

// State is the whole modal state of a session.
type State struct {
	Mode        Mode
	Pending     Pending
	CommandLine []rune // Text typed after ':'.
}

// Action identifies what an effect does.
type Action int

const (
	ActionMove        Action = iota // Move the cursor one step in Dir.
	ActionInsertRune                // Insert Rune at the cursor.
	ActionBackspace                 // Delete before the cursor, joining rows at column 0.
	ActionNewline                   // Split the row at the cursor.
	ActionCut                       // Cut Span into the clipboard.
	ActionCopy                      // Copy Span into the clipboard.
	ActionPaste                     // Paste the clipboard.
	ActionAnchor                    // Anchor a visual selection at the cursor.
	ActionVisualCut                 // Cut the visual selection.
	ActionVisualCopy                // Copy the visual selection.
	ActionExecute                   // Run Command from the command table.
)

// Span selects the rows a chord operates on.
type Span int

const (
	SpanCurrent      Span = iota // Current row alone.
	SpanWithNext                 // Current row and the next one.
	SpanWithPrevious             // Previous row and the current one.
)

// Effect is one mutation requested by a transition.
type Effect struct {
	Action  Action
	Dir     Direction
	Rune    rune
	Span    Span
	Command string
}

// Transition computes the next state and the effects of one key event.
// Non-key events leave the state unchanged.
func Transition(s State, ev termbox.Event) (State, []Effect) {
	if ev.Type != termbox.EventKey {
		return s, nil
	}

	// Escape from Insert, Command or Visual always lands in Normal.
	if ev.Key == termbox.KeyEsc {
		return State{Mode: ModeNormal}, nil
	}

	switch s.Mode {
	case ModeInsert:
		return insertTransition(s, ev)
	case ModeCommand:
		return commandTransition(s, ev)
	case ModeVisual:
		return visualTransition(s, ev)
	}
	if s.Pending != PendingNone {
		return chordTransition(s, ev)
	}
	return normalTransition(s, ev)
}

// movement maps h/j/k/l and the arrow keys to a direction.
func movement(ev termbox.Event) (Direction, bool) {
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return DirLeft, true
	case termbox.KeyArrowRight:
		return DirRight, true
	case termbox.KeyArrowUp:
		return DirUp, true
	case termbox.KeyArrowDown:
		return DirDown, true
	}
	if ev.Key != 0 {
		return 0, false
	}
	switch ev.Ch {
	case 'h':
		return DirLeft, true
	case 'l':
		return DirRight, true
	case 'k':
		return DirUp, true
	case 'j':
		return DirDown, true
	}
	return 0, false
}

func moveEffect(d Direction) []Effect {
	return []Effect{{Action: ActionMove, Dir: d}}
}

func normalTransition(s State, ev termbox.Event) (State, []Effect) {
	// Normal-mode bindings are unmodified keys only.
	if ev.Mod != 0 {
		return s, nil
	}
	if d, ok := movement(ev); ok {
		return s, moveEffect(d)
	}
	if ev.Key != 0 {
		return s, nil
	}

	switch ev.Ch {
	case 'i', 'a':
		return State{Mode: ModeInsert}, nil
	case 'v':
		return State{Mode: ModeVisual}, []Effect{{Action: ActionAnchor}}
	case ':':
		return State{Mode: ModeCommand, CommandLine: []rune{}}, nil
	case 'd':
		return State{Mode: ModeNormal, Pending: PendingCut}, nil
	case 'y':
		return State{Mode: ModeNormal, Pending: PendingCopy}, nil
	case 'p':
		return s, []Effect{{Action: ActionPaste}}
	}
	return s, nil
}

// chordTransition completes or cancels a pending d/y chord. The very next key
// decides; anything unrecognized cancels without side effects.
func chordTransition(s State, ev termbox.Event) (State, []Effect) {
	next := State{Mode: ModeNormal}
	if ev.Key != 0 || ev.Mod != 0 {
		return next, nil
	}

	action, verb := ActionCut, 'd'
	if s.Pending == PendingCopy {
		action, verb = ActionCopy, 'y'
	}

	switch ev.Ch {
	case verb:
		return next, []Effect{{Action: action, Span: SpanCurrent}}
	case 'j':
		return next, []Effect{{Action: action, Span: SpanWithNext}}
	case 'k':
		return next, []Effect{{Action: action, Span: SpanWithPrevious}}
	}
	return next, nil
}

func insertTransition(s State, ev termbox.Event) (State, []Effect) {
	if d, ok := movement(ev); ok && ev.Key != 0 {
		return s, moveEffect(d)
	}

	switch ev.Key {
	case termbox.KeyEnter:
		return s, []Effect{{Action: ActionNewline}}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return s, []Effect{{Action: ActionBackspace}}
	case termbox.KeySpace:
		return s, []Effect{{Action: ActionInsertRune, Rune: ' '}}
	case termbox.KeyTab:
		return s, []Effect{{Action: ActionInsertRune, Rune: '\t'}}
	}

	if ev.Key == 0 && ev.Ch != 0 && !unicode.IsControl(ev.Ch) {
		return s, []Effect{{Action: ActionInsertRune, Rune: ev.Ch}}
	}
	return s, nil
}

func commandTransition(s State, ev termbox.Event) (State, []Effect) {
	switch ev.Key {
	case termbox.KeyEnter:
		cmd := ":" + string(s.CommandLine)
		return State{Mode: ModeNormal}, []Effect{{Action: ActionExecute, Command: cmd}}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		if len(s.CommandLine) > 0 {
			s.CommandLine = append([]rune(nil), s.CommandLine[:len(s.CommandLine)-1]...)
		}
		return s, nil
	case termbox.KeySpace:
		s.CommandLine = appendRune(s.CommandLine, ' ')
		return s, nil
	}

	if ev.Key == 0 && ev.Ch != 0 && !unicode.IsControl(ev.Ch) {
		s.CommandLine = appendRune(s.CommandLine, ev.Ch)
	}
	return s, nil
}

func visualTransition(s State, ev termbox.Event) (State, []Effect) {
	if d, ok := movement(ev); ok {
		return s, moveEffect(d)
	}
	if ev.Key != 0 {
		return s, nil
	}

	switch ev.Ch {
	case 'y':
		return State{Mode: ModeNormal}, []Effect{{Action: ActionVisualCopy}}
	case 'd':
		return State{Mode: ModeNormal}, []Effect{{Action: ActionVisualCut}}
	}
	return s, nil
}

// appendRune returns a copy of line with r appended, so states never share
// backing arrays.
func appendRune(line []rune, r rune) []rune {
	out := make([]rune, len(line), len(line)+1)
	copy(out, line)
	return append(out, r)
}
