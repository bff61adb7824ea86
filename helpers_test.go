package main

import (
	"strings"
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

// key builds a printable key event.
func key(ch rune) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Ch: ch}
}

// special builds a non-printable key event (Esc, Enter, arrows...).
func special(k termbox.Key) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: k}
}

// keys turns a string into key events. Spaces become KeySpace the way
// termbox reports them.
func keys(s string) []termbox.Event {
	var evs []termbox.Event
	for _, r := range s {
		if r == ' ' {
			evs = append(evs, special(termbox.KeySpace))
			continue
		}
		evs = append(evs, key(r))
	}
	return evs
}

// newTestEditor returns a session over the given lines with a throwaway path.
func newTestEditor(t *testing.T, lines ...string) *Editor {
	t.Helper()
	e := NewEditor(t.TempDir()+"/buffer.txt", NewLogger(50, ""))
	e.buffer = NewBuffer(lines)
	return e
}

// press dispatches events and fails the test on any error.
func press(t *testing.T, e *Editor, evs ...termbox.Event) Control {
	t.Helper()
	ctl := ControlContinue
	for _, ev := range evs {
		var err error
		ctl, err = e.Dispatch(ev)
		require.NoError(t, err)
		if ctl == ControlExit {
			break
		}
	}
	return ctl
}

// withConfig swaps the global config for the duration of a test.
func withConfig(t *testing.T, mutate func(c *Configuration)) {
	t.Helper()
	saved := Config
	c := defaultConfiguration()
	mutate(&c)
	Config = c
	t.Cleanup(func() { Config = saved })
}

// fakeScreen records cells in memory.
type fakeScreen struct {
	w, h    int
	cells   [][]rune
	fgs     [][]termbox.Attribute
	bgs     [][]termbox.Attribute
	cursorX int
	cursorY int
	flushes int
}

func newFakeScreen(w, h int) *fakeScreen {
	s := &fakeScreen{w: w, h: h}
	s.Clear(termbox.ColorDefault, termbox.ColorDefault)
	return s
}

func (s *fakeScreen) Size() (int, int) { return s.w, s.h }

func (s *fakeScreen) Clear(fg, bg termbox.Attribute) error {
	s.cells = make([][]rune, s.h)
	s.fgs = make([][]termbox.Attribute, s.h)
	s.bgs = make([][]termbox.Attribute, s.h)
	for y := range s.cells {
		s.cells[y] = []rune(strings.Repeat(" ", s.w))
		s.fgs[y] = make([]termbox.Attribute, s.w)
		s.bgs[y] = make([]termbox.Attribute, s.w)
		for x := 0; x < s.w; x++ {
			s.fgs[y][x], s.bgs[y][x] = fg, bg
		}
	}
	return nil
}

func (s *fakeScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[y][x] = ch
	s.fgs[y][x] = fg
	s.bgs[y][x] = bg
}

func (s *fakeScreen) SetCursor(x, y int) {
	s.cursorX, s.cursorY = x, y
}

func (s *fakeScreen) Flush() error {
	s.flushes++
	return nil
}

// line returns screen row y with trailing blanks removed.
func (s *fakeScreen) line(y int) string {
	return strings.TrimRight(string(s.cells[y]), " ")
}
