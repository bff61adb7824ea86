package main

// Input processing. The main loop repaints, waits for one event, runs it
// through the state machine and interprets the resulting effects.

import (
	"fmt"

	"github.com/nsf/termbox-go"
)

// HandleEvents is the central loop: draw, wait for input, dispatch, until a
// command asks to exit or an effect fails.
func (e *Editor) HandleEvents(s Screen, poll func() termbox.Event) error {
	for {
		// Redraw the screen before waiting for the next event.
		e.draw(s)
		ev := poll()

		switch ev.Type {
		case termbox.EventError:
			return fmt.Errorf("terminal input: %w", ev.Err)
		case termbox.EventKey:
			// Clear message on any key press.
			e.message = ""
			ctl, err := e.Dispatch(ev)
			if err != nil {
				return err
			}
			if ctl == ControlExit {
				return nil
			}
		}
	}
}

// Dispatch feeds one event through the state machine and applies the effects.
func (e *Editor) Dispatch(ev termbox.Event) (Control, error) {
	var effects []Effect
	e.state, effects = Transition(e.state, ev)

	for _, eff := range effects {
		ctl, err := e.apply(eff)
		if err != nil || ctl == ControlExit {
			return ctl, err
		}
	}
	return ControlContinue, nil
}

// apply executes a single effect against the session.
func (e *Editor) apply(eff Effect) (Control, error) {
	switch eff.Action {
	case ActionMove:
		e.moveCursor(eff.Dir)
	case ActionInsertRune:
		e.insertRune(eff.Rune)
	case ActionBackspace:
		e.backspace()
	case ActionNewline:
		e.insertNewline()
	case ActionCut:
		e.cutRows(eff.Span)
	case ActionCopy:
		e.copyRows(eff.Span)
	case ActionPaste:
		e.paste()
	case ActionAnchor:
		e.anchorSelection()
	case ActionVisualCut:
		e.yankSelection(true)
	case ActionVisualCopy:
		e.yankSelection(false)
	case ActionExecute:
		return e.commands.Handle(eff.Command)
	}
	return ControlContinue, nil
}
