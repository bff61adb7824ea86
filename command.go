package main

// Colon command handler. Command-mode input is matched exactly against a
// fixed table; anything else is dropped without telling the user.

import "fmt"

// Control tells the event loop whether to keep running.
type Control int

const (
	ControlContinue Control = iota
	ControlExit
)

// Command provides a context for executing editor commands.
type Command struct {
	e *Editor
}

// Handle executes cmd. Save errors are returned and end the session.
func (ch *Command) Handle(cmd string) (Control, error) {
	switch cmd {
	case ":q":
		return ControlExit, nil
	case ":w":
		return ControlContinue, ch.write()
	case ":wq":
		if err := ch.write(); err != nil {
			return ControlContinue, err
		}
		return ControlExit, nil
	case ":set nu":
		ch.e.lineNumbers = true
	default:
		ch.e.addLog("Command", fmt.Sprintf("ignored %q", cmd))
	}
	return ControlContinue, nil
}

// write saves the buffer to the session path.
func (ch *Command) write() error {
	return ch.e.SaveFile()
}
