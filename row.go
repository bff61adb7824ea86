package main

// A single line of text. The rune slice is authoritative; the render slice is
// what gets painted, with tabs expanded to fixed stops.

// TabStop is the column multiple a tab character expands to.
const TabStop = 8

// Row holds one line of the buffer.
type Row struct {
	chars  []rune // Authoritative content.
	render []rune // Tab-expanded form, recomputed after every mutation.
}

// NewRow creates a row from text.
func NewRow(text string) *Row {
	r := &Row{chars: []rune(text)}
	r.update()
	return r
}

// Len returns the number of characters in the row (not render columns).
func (r *Row) Len() int {
	return len(r.chars)
}

func (r *Row) String() string {
	return string(r.chars)
}

// Render returns the tab-expanded form of the row.
func (r *Row) Render() []rune {
	return r.render
}

// InsertChar inserts c before index at. Negative indices insert at the
// start, indices past the end append.
func (r *Row) InsertChar(at int, c rune) {
	if at < 0 {
		at = 0
	}
	if at >= len(r.chars) {
		r.chars = append(r.chars, c)
	} else {
		r.chars = append(r.chars, 0) // make room
		copy(r.chars[at+1:], r.chars[at:])
		r.chars[at] = c
	}
	r.update()
}

// InsertString inserts s before index at, clamping at to the row length.
func (r *Row) InsertString(at int, s string) {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	ins := []rune(s)
	newChars := make([]rune, 0, len(r.chars)+len(ins))
	newChars = append(newChars, r.chars[:at]...)
	newChars = append(newChars, ins...)
	newChars = append(newChars, r.chars[at:]...)
	r.chars = newChars
	r.update()
}

// DeleteChar removes the character at index at. It returns false and leaves
// the row untouched when at is out of range.
func (r *Row) DeleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	return true
}

// DeleteRange removes characters in [from, to). Bounds are clamped.
func (r *Row) DeleteRange(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(r.chars) {
		to = len(r.chars)
	}
	if from >= to {
		return ""
	}
	removed := string(r.chars[from:to])
	r.chars = append(r.chars[:from], r.chars[to:]...)
	r.update()
	return removed
}

// Split truncates the row to [0, at) and returns the removed suffix.
func (r *Row) Split(at int) string {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	suffix := string(r.chars[at:])
	r.chars = r.chars[:at:at]
	r.update()
	return suffix
}

// AppendString concatenates s onto the end of the row.
func (r *Row) AppendString(s string) {
	r.chars = append(r.chars, []rune(s)...)
	r.update()
}

// RenderX converts a character index into a render column.
func (r *Row) RenderX(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += TabStop - (rx % TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// update recomputes render from chars.
func (r *Row) update() {
	render := make([]rune, 0, len(r.chars))
	for _, c := range r.chars {
		if c == '\t' {
			// Each tab advances at least one column.
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}
