package main

// Editing session. Owns the buffer, cursor, clipboard and modal state, and
// implements the mutations the state machine asks for.

import (
	"fmt"
	"os"
)

// Editor is the session controller that holds all editing state.
type Editor struct {
	buffer      *Buffer    // Rows of the file being edited.
	cursor      Cursor     // Where the next character operation applies.
	viewport    Viewport   // Scroll offsets, recomputed on every draw.
	clipboard   *Clipboard // Cut/copy register.
	state       State      // Mode, pending chord and command line.
	filename    string     // Path written by :w.
	modified    bool       // True if changes haven't been saved.
	lineNumbers bool       // Gutter numbers visible (:set nu).
	anchor      Cursor     // Visual selection start.
	message     string     // Status message shown on the command line.
	log         *Logger
	commands    *Command
}

// NewEditor creates a session over an empty buffer that saves to filename.
func NewEditor(filename string, log *Logger) *Editor {
	if log == nil {
		log = NewLogger(Config.NumLogMessages, "")
	}
	e := &Editor{
		buffer:      NewBuffer(nil),
		clipboard:   NewClipboard(Config.SystemClipboard),
		state:       State{Mode: ModeNormal},
		filename:    filename,
		lineNumbers: Config.LineNumbers,
		log:         log,
	}
	e.commands = &Command{e: e}
	e.addLog("Editor", "Editor initialized")
	return e
}

func (e *Editor) addLog(group, msg string) {
	e.log.Add(group, msg)
}

// LoadFile replaces the buffer with the content of filename. A missing or
// unreadable file is an error; the session must not start empty instead.
func (e *Editor) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	e.buffer = ParseText(string(data))
	e.filename = filename
	e.cursor = Cursor{}
	e.viewport = Viewport{}
	e.modified = false
	e.addLog("Editor", fmt.Sprintf("Loaded %s (%d lines)", filename, e.buffer.Len()))
	return nil
}

// SaveFile writes the whole buffer to the session's path, creating or
// truncating it.
func (e *Editor) SaveFile() error {
	if e.filename == "" {
		return fmt.Errorf("no filename")
	}
	if err := os.WriteFile(e.filename, []byte(e.buffer.ToText()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.filename, err)
	}
	e.modified = false
	e.message = fmt.Sprintf("\"%s\" %dL written", e.filename, e.buffer.Len())
	e.addLog("Editor", e.message)
	return nil
}

func (e *Editor) markModified() {
	e.modified = true
}

// currentRow returns the row under the cursor, synthesizing one in an empty
// buffer.
func (e *Editor) currentRow() *Row {
	e.buffer.EnsureRow()
	e.cursor.Clamp(e.buffer)
	return e.buffer.Row(e.cursor.Y)
}

func (e *Editor) moveCursor(d Direction) {
	e.cursor.Move(d, e.buffer)
}

// insertRune inserts r at the cursor and advances it.
func (e *Editor) insertRune(r rune) {
	row := e.currentRow()
	row.InsertChar(e.cursor.X, r)
	e.cursor.X++
	e.markModified()
}

// backspace deletes the character before the cursor. At column 0 the row is
// joined onto the end of the previous one.
func (e *Editor) backspace() {
	row := e.buffer.Row(e.cursor.Y)
	if row == nil {
		return
	}
	if e.cursor.X > 0 {
		if row.DeleteChar(e.cursor.X - 1) {
			e.cursor.X--
		}
		e.cursor.Clamp(e.buffer)
		e.markModified()
		return
	}
	if e.cursor.Y == 0 {
		return
	}
	prevLen := e.buffer.RowLen(e.cursor.Y - 1)
	e.buffer.JoinWithPrevious(e.cursor.Y)
	e.cursor.Y--
	e.cursor.X = prevLen
	e.markModified()
}

// insertNewline breaks the row at the cursor. At column 0 an empty row is
// inserted above instead. The cursor ends at the start of the next row.
func (e *Editor) insertNewline() {
	row := e.currentRow()
	if e.cursor.X == 0 {
		e.buffer.InsertRow(e.cursor.Y, "")
	} else {
		suffix := row.Split(e.cursor.X)
		e.buffer.InsertRow(e.cursor.Y+1, suffix)
	}
	e.cursor.Y++
	e.cursor.X = 0
	e.markModified()
}

// spanRows resolves a chord span to a row range [from, to]. ok is false when
// the span reaches past the buffer.
func (e *Editor) spanRows(span Span) (from, to int, ok bool) {
	y, n := e.cursor.Y, e.buffer.Len()
	if y >= n {
		return 0, 0, false
	}
	switch span {
	case SpanCurrent:
		return y, y, true
	case SpanWithNext:
		if y+1 < n {
			return y, y + 1, true
		}
	case SpanWithPrevious:
		if y > 0 {
			return y - 1, y, true
		}
	}
	return 0, 0, false
}

func (e *Editor) setClipboard(lines []string, linewise bool) {
	if err := e.clipboard.Set(lines, linewise); err != nil {
		e.addLog("Clipboard", fmt.Sprintf("system clipboard write failed: %v", err))
	}
}

// copyRows copies the rows of span into the clipboard. The cursor stays put.
func (e *Editor) copyRows(span Span) {
	from, to, ok := e.spanRows(span)
	if !ok {
		return
	}
	e.setClipboard(e.buffer.Lines()[from:to+1], true)
}

// cutRows removes the rows of span and stores them in the clipboard.
func (e *Editor) cutRows(span Span) {
	from, to, ok := e.spanRows(span)
	if !ok {
		return
	}
	e.setClipboard(e.buffer.Lines()[from:to+1], true)
	for i := to; i >= from; i-- {
		e.buffer.RemoveRow(i)
	}

	switch span {
	case SpanCurrent:
		// The row above becomes current unless the buffer is now empty.
		if e.buffer.Len() > 0 && e.cursor.Y > 0 {
			e.cursor.Y--
		}
	case SpanWithPrevious:
		e.cursor.Y--
	}
	e.cursor.Clamp(e.buffer)
	e.markModified()
}

// paste inserts the clipboard. Line-wise registers become new rows below the
// cursor; a character-wise register is inserted inline at the cursor column.
func (e *Editor) paste() {
	reg := e.clipboard.Register()
	if reg.Empty() {
		return
	}
	row := e.currentRow()

	if reg.Linewise {
		for i, line := range reg.Lines {
			e.buffer.InsertRow(e.cursor.Y+1+i, line)
		}
		e.cursor.Y++
		e.cursor.X = 0
	} else {
		text := reg.Lines[0]
		row.InsertString(e.cursor.X, text)
		e.cursor.X += len([]rune(text))
		e.cursor.Clamp(e.buffer)
	}
	e.markModified()
}

// anchorSelection starts a visual selection at the cursor.
func (e *Editor) anchorSelection() {
	e.anchor = e.cursor
}

// selection returns the ordered bounds of the visual selection.
func (e *Editor) selection() (start, end Cursor) {
	start, end = e.anchor, e.cursor
	if start.Y > end.Y || (start.Y == end.Y && start.X > end.X) {
		start, end = end, start
	}
	return start, end
}

// selectionColumns returns the [from, to) character range of a single-row
// selection, inclusive of the character under the end position.
func (e *Editor) selectionColumns() (from, to int) {
	start, end := e.selection()
	from, to = start.X, end.X+1
	if l := e.buffer.RowLen(start.Y); to > l {
		to = l
	}
	return from, to
}

// yankSelection copies (and with cut, removes) the visual selection. A
// selection within one row is character-wise, anything larger is line-wise.
func (e *Editor) yankSelection(cut bool) {
	if e.buffer.Len() == 0 {
		return
	}
	start, end := e.selection()
	if end.Y >= e.buffer.Len() {
		end.Y = e.buffer.Len() - 1
	}

	if start.Y == end.Y {
		from, to := e.selectionColumns()
		if from >= to {
			// Nothing under the selection; keep the register.
			return
		}
		row := e.buffer.Row(start.Y)
		e.setClipboard([]string{string(row.chars[from:to])}, false)
		if cut {
			row.DeleteRange(from, to)
			e.cursor = Cursor{X: from, Y: start.Y}
			e.cursor.Clamp(e.buffer)
			e.markModified()
		}
		return
	}

	e.setClipboard(e.buffer.Lines()[start.Y:end.Y+1], true)
	if cut {
		for i := end.Y; i >= start.Y; i-- {
			e.buffer.RemoveRow(i)
		}
		e.cursor = Cursor{Y: start.Y}
		e.cursor.Clamp(e.buffer)
		e.markModified()
	}
}
