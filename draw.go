package main

// Rendering. Paints the visible rows, the line number gutter, the status bar
// and the command line after every event.

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// cellWidth is the number of terminal cells r occupies. Zero-width runes
// still get a cell of their own.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// cellsBetween sums the cell widths of render[from:to].
func cellsBetween(render []rune, from, to int) int {
	if to > len(render) {
		// Past the end of the text every column is one cell.
		return cellsBetween(render, from, len(render)) + to - max(from, len(render))
	}
	n := 0
	for i := from; i < to; i++ {
		n += cellWidth(render[i])
	}
	return n
}

// drawText writes s starting at (x, y) and returns the next free column.
func drawText(s Screen, x, y, maxX int, text string, fg, bg termbox.Attribute) int {
	for _, r := range text {
		cw := cellWidth(r)
		if x+cw > maxX {
			break
		}
		s.SetCell(x, y, r, fg, bg)
		x += cw
	}
	return x
}

// cursorRenderX returns the render column of the cursor.
func (e *Editor) cursorRenderX() int {
	if row := e.buffer.Row(e.cursor.Y); row != nil {
		return row.RenderX(e.cursor.X)
	}
	return 0
}

// inSelection reports whether character idx of row y is visually selected.
func (e *Editor) inSelection(y, idx int) bool {
	if e.state.Mode != ModeVisual {
		return false
	}
	start, end := e.selection()
	if y < start.Y || y > end.Y {
		return false
	}
	if start.Y != end.Y {
		return true
	}
	from, to := e.selectionColumns()
	return idx >= from && idx < to
}

// draw is the main UI rendering routine.
func (e *Editor) draw(s Screen) {
	_, defaultBg := GetThemeColor(ColorDefault)
	s.Clear(termbox.ColorDefault, defaultBg)
	w, h := s.Size()

	gutter := Config.GutterWidth
	textRows, textCols := visibleArea(w, h, gutter)

	var render []rune
	if row := e.buffer.Row(e.cursor.Y); row != nil {
		render = row.Render()
	}

	// Keep the cursor inside the window.
	rx := e.cursorRenderX()
	e.viewport.Scroll(rx, e.cursor.Y, textRows, textCols)
	e.viewport.FitCells(render, rx, textCols)

	for screenY := 0; screenY < textRows && screenY < h; screenY++ {
		bufferY := screenY + e.viewport.RowOff
		row := e.buffer.Row(bufferY)
		if row == nil {
			fg, bg := GetThemeColor(ColorEmptyLineMarker)
			s.SetCell(0, screenY, '~', fg, bg)
			continue
		}
		e.drawRow(s, row, bufferY, screenY, gutter, textCols, w)
	}

	if e.buffer.Len() == 0 && !e.modified && e.state.Mode == ModeNormal {
		e.drawIntro(s)
	}

	e.drawStatusBar(s, h-2)
	e.drawCommandBar(s, h-1)

	if Config.DevMode {
		e.drawDebugLog(s)
	}

	// Synchronize terminal cursor with editor focus.
	if e.state.Mode == ModeCommand {
		s.SetCursor(1+len(e.state.CommandLine), h-1)
	} else {
		x := gutter + cellsBetween(render, e.viewport.ColOff, rx)
		s.SetCursor(x, e.cursor.Y-e.viewport.RowOff)
	}
	s.Flush()
}

// drawRow paints the gutter and the visible slice of one buffer row.
func (e *Editor) drawRow(s Screen, row *Row, bufferY, screenY, gutter, cols, w int) {
	// Gutter line number rendering.
	if e.lineNumbers && gutter > 1 {
		label := gutterLabel(bufferY, e.cursor.Y, Config.RelativeNumbers)
		color := ColorGutterLineNumber
		if bufferY == e.cursor.Y {
			color = ColorGutterCurrentLine
		}
		fg, bg := GetThemeColor(color)
		if len(label) > gutter-1 {
			label = label[len(label)-(gutter-1):]
		}
		drawText(s, gutter-1-len(label), screenY, gutter, label, fg, bg)
	}

	fg, bg := GetThemeColor(ColorDefault)
	if bufferY == e.cursor.Y {
		_, bg = GetThemeColor(ColorHighlightedLine)
		for x := gutter; x < w; x++ {
			s.SetCell(x, screenY, ' ', fg, bg)
		}
	}

	selFg, selBg := GetThemeColor(ColorVisualModeSelection)
	visible := e.viewport.Slice(row.Render(), cols)

	// Map render columns back to characters for selection highlighting.
	charAt := renderOwners(row)
	x := gutter
	for i, r := range visible {
		cw := cellWidth(r)
		if x+cw > w {
			break
		}
		cellFg, cellBg := fg, bg
		if idx := charAt[e.viewport.ColOff+i]; e.inSelection(bufferY, idx) {
			cellFg, cellBg = selFg, selBg
		}
		s.SetCell(x, screenY, r, cellFg, cellBg)
		x += cw
	}
}

// renderOwners maps every render column to the index of the character that
// produced it.
func renderOwners(row *Row) []int {
	owners := make([]int, 0, len(row.Render()))
	for i, c := range row.chars {
		n := 1
		if c == '\t' {
			n = TabStop - (len(owners) % TabStop)
		}
		for j := 0; j < n; j++ {
			owners = append(owners, i)
		}
	}
	return owners
}

// drawStatusBar renders the bar showing the mode, file and cursor position.
func (e *Editor) drawStatusBar(s Screen, statusY int) {
	if statusY < 0 {
		return
	}
	w, _ := s.Size()

	// Fill background for the entire status line.
	barFg, barBg := GetThemeColor(ColorStatusBar)
	for x := 0; x < w; x++ {
		s.SetCell(x, statusY, ' ', barFg, barBg)
	}

	modeStr := " " + e.state.Mode.String() + " "
	switch e.state.Pending {
	case PendingCut:
		modeStr = " NORMAL d "
	case PendingCopy:
		modeStr = " NORMAL y "
	}
	fg, bg := GetThemeColor(modeColor(e.state))
	x := drawText(s, 0, statusY, w, modeStr, fg, bg)

	fileStr := e.filename
	if e.modified {
		fileStr += " [+]"
	}

	statusRight := fmt.Sprintf("%d,%d %dL ", e.cursor.Y+1, e.cursor.X+1, e.buffer.Len())
	rightX := w - runewidth.StringWidth(statusRight)

	// Leave room for the right-hand side; long paths are cut with an ellipsis.
	room := rightX - x - 2
	if room > 0 {
		drawText(s, x+1, statusY, x+1+room, runewidth.Truncate(fileStr, room, "..."), barFg, barBg)
	}
	if rightX > x {
		drawText(s, rightX, statusY, w, statusRight, barFg, barBg)
	}
}

// drawCommandBar renders the command line being typed, or the last message.
func (e *Editor) drawCommandBar(s Screen, cmdY int) {
	if cmdY < 0 {
		return
	}
	w, _ := s.Size()
	fg, bg := GetThemeColor(ColorDefault)
	for x := 0; x < w; x++ {
		s.SetCell(x, cmdY, ' ', fg, bg)
	}

	if e.state.Mode == ModeCommand {
		drawText(s, 0, cmdY, w, ":"+string(e.state.CommandLine), fg, bg)
		return
	}
	drawText(s, 0, cmdY, w, runewidth.Truncate(e.message, w, "..."), fg, bg)
}

// drawDebugLog overlays the most recent log messages above the status bar.
func (e *Editor) drawDebugLog(s Screen) {
	w, h := s.Size()
	logs := e.log.Messages()
	if len(logs) > Config.NumLogsInWindow {
		logs = logs[len(logs)-Config.NumLogsInWindow:]
	}

	startY := h - 3 - len(logs)
	if startY < 0 {
		startY = 0
	}

	// Draw window background
	fg, bg := GetThemeColor(ColorDebugWindow)
	for y := startY; y < h-2; y++ {
		for x := 0; x < w; x++ {
			s.SetCell(x, y, ' ', fg, bg)
		}
	}

	title := "[DEBUG LOG]"
	titleFg, titleBg := GetThemeColor(ColorDebugTitle)
	drawText(s, (w-len(title))/2, startY, w, title, titleFg, titleBg)

	for i, msg := range logs {
		y := startY + 1 + i
		if y >= h-2 {
			break
		}
		drawText(s, 1, y, w, runewidth.Truncate(msg, w-2, "..."), fg, bg)
	}
}
