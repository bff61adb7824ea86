package main

// Cursor position over the buffer and the directional movement rules.

// Direction is one of the four movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// Cursor represents a position in the buffer.
type Cursor struct {
	X int // Column index (0-based).
	Y int // Row index (0-based).
}

// Move applies one step in dir. Out-of-range steps are absorbed.
func (c *Cursor) Move(dir Direction, b *Buffer) {
	switch dir {
	case DirLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			// Wrap to the end of the previous line.
			c.Y--
			c.X = b.RowLen(c.Y)
		}
	case DirRight:
		if c.X < b.RowLen(c.Y) {
			c.X++
		} else if c.Y < b.Len()-1 {
			// Wrap to the start of the next line.
			c.Y++
			c.X = 0
		}
	case DirUp:
		if c.Y > 0 {
			c.Y--
		}
	case DirDown:
		if c.Y < b.Len()-1 {
			c.Y++
		}
	}
	c.Clamp(b)
}

// Clamp restores the cursor invariant after any row mutation:
// Y < max(1, rows) and X <= len(row Y).
func (c *Cursor) Clamp(b *Buffer) {
	if c.Y >= b.Len() {
		c.Y = b.Len() - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X > b.RowLen(c.Y) {
		c.X = b.RowLen(c.Y)
	}
	if c.X < 0 {
		c.X = 0
	}
}
