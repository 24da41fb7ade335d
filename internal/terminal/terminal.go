// Package terminal is the TUI adapter (spec §6): an abstract interface
// over the terminal driver, backed by tcell, so the core never imports
// tcell directly outside this package.
package terminal

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"

	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/view"
)

// TUI is the terminal driver contract consumed by the rest of the core
// (spec §6 "TUI adapter (external)").
type TUI interface {
	Start() error
	End()
	Size() (w, h int)
	Flush()
	Reset()
	SetColor(fg, bg view.Color)
	SetDim(bool)
	SetUnderline(bool)
	SetReverse(bool)
	MoveToColumn(x int)
	MoveNextLine()
	Print(s string)
	PollEvent() events.Event
	PostInterrupt()
}

// New builds a tcell-backed TUI, diagnosing the common "terminal code not
// found" failure the way the teacher's initTUI does (up.go's die() block
// with a sha1-hashed TERM lookup hint).
func New() (TUI, error) {
	screen, err := tcell.NewScreen()
	if err == terminfo.ErrTermNotFound {
		term := os.Getenv("TERM")
		hash := sha1.Sum([]byte(term))
		return nil, fmt.Errorf(`terminal code %q was not found in the tcell terminfo database (hash %x); `+
			`try a different $TERM, or supply a supplemental database entry`, term, hash)
	}
	if err != nil {
		return nil, err
	}
	return &tcellTUI{screen: screen}, nil
}

type tcellTUI struct {
	screen tcell.Screen
	pal    *palette
	style  tcell.Style
	x, y   int
}

func (t *tcellTUI) Start() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.pal = newPalette(t.screen.Colors())
	return nil
}

func (t *tcellTUI) End() { t.screen.Fini() }

func (t *tcellTUI) Size() (int, int) { return t.screen.Size() }

func (t *tcellTUI) Flush() { t.screen.Show() }

func (t *tcellTUI) Reset() {
	t.style = tcell.StyleDefault
	t.x, t.y = 0, 0
	t.screen.Clear()
}

func (t *tcellTUI) SetColor(fg, bg view.Color) {
	t.style = t.style.Foreground(t.resolveColor(fg)).Background(t.resolveColor(bg))
}

func (t *tcellTUI) resolveColor(c view.Color) tcell.Color {
	if t.pal == nil {
		return namedColor(c)
	}
	return t.pal.resolve(c)
}

func (t *tcellTUI) SetDim(on bool)       { t.style = t.style.Dim(on) }
func (t *tcellTUI) SetUnderline(on bool) { t.style = t.style.Underline(on) }
func (t *tcellTUI) SetReverse(on bool)   { t.style = t.style.Reverse(on) }

func (t *tcellTUI) MoveToColumn(x int) { t.x = x }
func (t *tcellTUI) MoveNextLine()      { t.x = 0; t.y++ }

func (t *tcellTUI) Print(s string) {
	for _, r := range s {
		t.screen.SetContent(t.x, t.y, r, nil, t.style)
		t.x++
	}
}

func (t *tcellTUI) PollEvent() events.Event { return translateTcellEvent(t.screen.PollEvent()) }

func (t *tcellTUI) PostInterrupt() { t.screen.PostEvent(tcell.NewEventInterrupt(nil)) }
