package main

// The line buffer of the file being edited. All row-level mutation (insert,
// remove, join) lives here; character edits go through Row.

import "strings"

// Buffer is an ordered sequence of rows.
type Buffer struct {
	rows []*Row
}

// NewBuffer builds a buffer with one row per line.
func NewBuffer(lines []string) *Buffer {
	b := &Buffer{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	return b
}

// ParseText splits file content on newlines. The empty trailing row produced
// by a final newline is dropped, so "" and "\n" differ only in row count.
func ParseText(text string) *Buffer {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return NewBuffer(lines)
}

// Len returns the number of rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Row returns the row at idx, or nil when idx is out of range.
func (b *Buffer) Row(idx int) *Row {
	if idx < 0 || idx >= len(b.rows) {
		return nil
	}
	return b.rows[idx]
}

// RowLen returns the length of row idx, 0 for rows that don't exist.
func (b *Buffer) RowLen(idx int) int {
	if r := b.Row(idx); r != nil {
		return r.Len()
	}
	return 0
}

// Lines returns the text of every row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return lines
}

// InsertRow inserts a new row at idx, shifting later rows down. Indices past
// the end are ignored.
func (b *Buffer) InsertRow(idx int, text string) {
	if idx < 0 || idx > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil) // grow the buffer
	copy(b.rows[idx+1:], b.rows[idx:])
	b.rows[idx] = NewRow(text)
}

// RemoveRow removes and returns the row at idx. The caller validates idx.
func (b *Buffer) RemoveRow(idx int) *Row {
	r := b.rows[idx]
	copy(b.rows[idx:], b.rows[idx+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	return r
}

// JoinWithPrevious appends row idx onto row idx-1 and removes row idx.
func (b *Buffer) JoinWithPrevious(idx int) {
	if idx <= 0 || idx >= len(b.rows) {
		return
	}
	b.rows[idx-1].AppendString(b.rows[idx].String())
	b.RemoveRow(idx)
}

// EnsureRow synthesizes an empty row when the buffer has none.
func (b *Buffer) EnsureRow() {
	if len(b.rows) == 0 {
		b.InsertRow(0, "")
	}
}

// ToText serializes the buffer: rows joined by newlines plus a trailing one.
func (b *Buffer) ToText() string {
	var result strings.Builder
	for _, r := range b.rows {
		result.WriteString(r.String())
		result.WriteString("\n")
	}
	return result.String()
}
