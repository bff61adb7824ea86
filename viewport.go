package main

// Visible window into the buffer. Offsets are recomputed every frame from the
// cursor so that it always stays on screen.

import "strconv"

// Reserved lines at the bottom of the screen: status bar and command line.
const reservedLines = 2

// Viewport tracks the first visible row and column.
type Viewport struct {
	RowOff int
	ColOff int
}

// visibleArea returns the number of text rows and columns for a terminal of
// w x h cells with a gutter of the given width. Both are at least 1.
func visibleArea(w, h, gutter int) (rows, cols int) {
	rows = h - reservedLines
	cols = w - gutter
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}

// Scroll adjusts the offsets so that (cx, cy) is inside a rows x cols window.
// cx is a render column.
func (v *Viewport) Scroll(cx, cy, rows, cols int) {
	// Vertical.
	if cy < v.RowOff {
		v.RowOff = cy
	}
	if cy >= v.RowOff+rows {
		v.RowOff = cy - rows + 1
	}

	// Horizontal.
	if cx < v.ColOff {
		v.ColOff = cx
	}
	if cx >= v.ColOff+cols {
		v.ColOff = cx - cols + 1
	}
}

// FitCells advances ColOff until the cursor at render column rx, including the
// cell under it, fits in cols terminal cells. Wide runes take two cells each.
func (v *Viewport) FitCells(render []rune, rx, cols int) {
	cw := 1
	if rx < len(render) {
		cw = cellWidth(render[rx])
	}
	for v.ColOff < rx && cellsBetween(render, v.ColOff, rx)+cw > cols {
		v.ColOff++
	}
}

// Slice returns render[coloff : coloff+cols], clipped to the row length.
func (v *Viewport) Slice(render []rune, cols int) []rune {
	if v.ColOff >= len(render) {
		return nil
	}
	end := v.ColOff + cols
	if end > len(render) {
		end = len(render)
	}
	return render[v.ColOff:end]
}

// gutterLabel returns the line number shown for row idx. In relative mode the
// cursor row keeps its absolute (1-based) number and every other row shows its
// distance from the cursor.
func gutterLabel(idx, cursorY int, relative bool) string {
	if !relative || idx == cursorY {
		return strconv.Itoa(idx + 1)
	}
	d := idx - cursorY
	if d < 0 {
		d = -d
	}
	return strconv.Itoa(d)
}
