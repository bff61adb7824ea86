package main

// The clipboard register written by cut/copy and read by paste. Optionally
// mirrors every write to the system clipboard.

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Register is the clipboard payload. A register with more than one line is
// always line-wise; a single line may be either.
type Register struct {
	Lines    []string
	Linewise bool
}

// Empty reports whether there is nothing to paste.
func (r Register) Empty() bool {
	return len(r.Lines) == 0
}

// Clipboard holds the current register.
type Clipboard struct {
	reg    Register
	mirror func(string) error // System clipboard writer, nil when disabled.
}

// NewClipboard creates an empty clipboard. When system is true every write
// is also copied to the OS clipboard.
func NewClipboard(system bool) *Clipboard {
	c := &Clipboard{}
	if system && !clipboard.Unsupported {
		c.mirror = clipboard.WriteAll
	}
	return c
}

// Set replaces the register. Multi-line payloads are forced line-wise.
func (c *Clipboard) Set(lines []string, linewise bool) error {
	c.reg = Register{
		Lines:    append([]string(nil), lines...),
		Linewise: linewise || len(lines) > 1,
	}
	if c.mirror == nil {
		return nil
	}
	text := strings.Join(lines, "\n")
	if c.reg.Linewise {
		text += "\n"
	}
	return c.mirror(text)
}

// Register returns a copy of the current register.
func (c *Clipboard) Register() Register {
	return Register{
		Lines:    append([]string(nil), c.reg.Lines...),
		Linewise: c.reg.Linewise,
	}
}
