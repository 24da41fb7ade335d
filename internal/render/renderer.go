package render

import (
	"github.com/akavel/girt/internal/terminal"
	"github.com/akavel/girt/internal/view"
)

// style is the subset of terminal.TUI's style state the Renderer tracks
// to decide whether a style-change command is needed (spec §4.4
// "Renderer ... maintain a last_style").
type style struct {
	fg, bg    view.Color
	dim       bool
	underline bool
	reversed  bool
}

// Renderer writes a Slice to a terminal.TUI, only emitting style-change
// commands when the desired style differs from the previous cell's
// (spec §4.4, grounded on up.go's RowView which tracks a running x/style
// cursor while printing a row).
type Renderer struct {
	tui       terminal.TUI
	lastStyle style
	haveStyle bool
}

// NewRenderer wraps tui.
func NewRenderer(tui terminal.TUI) *Renderer { return &Renderer{tui: tui} }

// Draw writes every line in s to the terminal, then the scrollbar column
// if the slice says it's needed, and flushes once.
func (r *Renderer) Draw(s *Slice) {
	r.tui.Reset()
	for _, line := range s.Lines {
		r.drawLine(line)
		r.tui.MoveNextLine()
	}
	if s.ShouldShowScrollbar() {
		r.drawScrollbar(s)
	}
	r.tui.Flush()
}

func (r *Renderer) drawLine(l view.ViewLine) {
	r.tui.MoveToColumn(0)
	for _, seg := range l.Segments {
		segStyle := style{
			fg:        seg.Color,
			dim:       seg.Dim,
			underline: seg.Underline,
			reversed:  seg.Reversed || l.Selected,
		}
		r.applyStyle(segStyle)
		r.tui.Print(seg.Text)
	}
}

func (r *Renderer) applyStyle(want style) {
	if r.haveStyle && want == r.lastStyle {
		return
	}
	r.tui.SetColor(want.fg, view.ColorDefault)
	r.tui.SetDim(want.dim)
	r.tui.SetUnderline(want.underline)
	r.tui.SetReverse(want.reversed)
	r.lastStyle = want
	r.haveStyle = true
}

// drawScrollbar draws a single-character column whose filled row is the
// linear interpolation described in spec §4.4: top=1 maps to row 1,
// top=lines_length-visible_body-1 maps to row visible_body-2, with 0 and
// the max mapping to the track's top and bottom.
func (r *Renderer) drawScrollbar(s *Slice) {
	track := s.visibleBody
	if track <= 0 {
		return
	}
	col := s.width - 1
	maxTop := max0(s.linesLength - s.visibleBody)

	filled := scrollbarRow(s.scroll.top, maxTop, track)
	r.applyStyle(style{reversed: true})
	for row := 0; row < track; row++ {
		r.tui.MoveToColumn(col)
		if row == filled {
			r.tui.Print("█")
		} else {
			r.tui.Print(" ")
		}
		if row < track-1 {
			r.tui.MoveNextLine()
		}
	}
}

// scrollbarRow interpolates top in [0, maxTop] onto a row in [0, track-1],
// with the endpoints pinned to the track's top and bottom.
func scrollbarRow(top, maxTop, track int) int {
	if maxTop <= 0 || track <= 1 {
		return 0
	}
	if top <= 0 {
		return 0
	}
	if top >= maxTop {
		return track - 1
	}
	return 1 + (top-1)*max0(track-3)/max1(maxTop-2)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
