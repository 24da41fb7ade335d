package render

import (
	"testing"

	"github.com/akavel/girt/internal/view"
)

func bodyLines(n int, width int) []view.ViewLine {
	lines := make([]view.ViewLine, n)
	text := ""
	for i := 0; i < width; i++ {
		text += "x"
	}
	for i := range lines {
		lines[i] = view.NewViewLine(view.NewSegment(text))
	}
	return lines
}

// property #5: top in [0, max(0, lines_length-visible_body)], left in
// [0, max(0, max_line_length-visible_width)].
func TestSlice_Sync_ClampsTopAndLeft(t *testing.T) {
	s := New(10, 5)
	vd := view.ViewData{Name: "list", Version: 1, Body: bodyLines(100, 40)}
	s.Sync(vd)

	s.PushAction(PageDown)
	s.PushAction(PageDown)
	s.PushAction(PageDown)
	s.PushAction(PageDown)
	s.PushAction(PageDown)
	s.PushAction(PageDown)
	s.PushAction(ScrollRight)
	for i := 0; i < 200; i++ {
		s.PushAction(ScrollRight)
	}
	vd.Version = 2
	s.Sync(vd)

	maxTop := 100 - s.visibleBody
	if s.Top() < 0 || s.Top() > maxTop {
		t.Errorf("top = %d, want within [0,%d]", s.Top(), maxTop)
	}
	maxLeft := 40 - s.visibleWidth
	if s.Left() < 0 || s.Left() > maxLeft {
		t.Errorf("left = %d, want within [0,%d]", s.Left(), maxLeft)
	}
}

func TestSlice_Sync_NegativeScrollClampsToZero(t *testing.T) {
	s := New(10, 5)
	vd := view.ViewData{Name: "list", Version: 1, Body: bodyLines(3, 5)}
	s.Sync(vd)

	s.PushAction(ScrollUp)
	s.PushAction(ScrollUp)
	s.PushAction(ScrollLeft)
	vd.Version = 2
	s.Sync(vd)

	if s.Top() != 0 {
		t.Errorf("top = %d, want 0", s.Top())
	}
	if s.Left() != 0 {
		t.Errorf("left = %d, want 0", s.Left())
	}
}

// property #6: two consecutive syncs of the same ViewData (no pending
// actions between them) produce identical lines.
func TestSlice_Sync_IsIdempotent(t *testing.T) {
	s := New(10, 5)
	vd := view.ViewData{Name: "list", Version: 1, Body: bodyLines(20, 20)}

	s.Sync(vd)
	first := renderedText(s.Lines)

	s.Sync(vd)
	second := renderedText(s.Lines)

	if first != second {
		t.Errorf("render not idempotent:\n%q\n%q", first, second)
	}
}

func TestSlice_Sync_VisibleRowPullsTopForward(t *testing.T) {
	s := New(10, 5)
	vd := view.ViewData{Name: "list", Version: 1, Body: bodyLines(50, 5)}
	s.Sync(vd)

	row := 40
	vd.VisibleRow = &row
	vd.Version = 2
	s.Sync(vd)

	if s.Top() > row || row >= s.Top()+s.visibleBody {
		t.Errorf("row %d not within [top=%d, top+visibleBody=%d)", row, s.Top(), s.Top()+s.visibleBody)
	}
}

func TestSlice_ClipLine_HorizontalClipWithPadding(t *testing.T) {
	s := New(5, 3)
	pad := view.NewSegment(" ")
	line := view.NewViewLine(view.NewSegment("ab"))
	line.Padding = &pad
	vd := view.ViewData{Name: "list", Version: 1, Body: []view.ViewLine{line}}
	s.Sync(vd)

	if len(s.Lines) == 0 {
		t.Fatal("expected at least one line")
	}
	got := s.Lines[0]
	total := 0
	for _, seg := range got.Segments {
		total += seg.GraphemeLen()
	}
	if total != s.visibleWidth {
		t.Errorf("line width = %d, want %d (visibleWidth)", total, s.visibleWidth)
	}
}

func renderedText(lines []view.ViewLine) string {
	out := ""
	for _, l := range lines {
		for _, seg := range l.Segments {
			out += seg.Text
		}
		out += "\n"
	}
	return out
}
