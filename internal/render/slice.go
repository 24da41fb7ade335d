// Package render implements the view pipeline's second and third stages
// (spec §4.4): RenderSlice syncs a ViewData plus a history of scroll and
// resize actions into terminal-ready lines, and Renderer writes a slice
// to a terminal.TUI with style-delta minimization.
package render

import (
	"strings"

	"github.com/akavel/girt/internal/view"
)

// Action is one entry in the pending-actions deque a view thread appends
// to between renders (spec GLOSSARY "RenderSlice").
type Action int

const (
	ScrollUp Action = iota
	ScrollDown
	PageUp
	PageDown
	ScrollLeft
	ScrollRight
)

// ResizeAction is the one pending action that carries a payload, kept as
// its own type so the deque can stay a plain []Action for the rest.
type ResizeAction struct {
	Width, Height int
}

// scrollPosition is the per-view-name scroll cache entry (spec §4.4 step 2).
type scrollPosition struct {
	top, left     int
	version       uint64
	linesLength   int
	maxLineLength int
}

// Slice is the clipped, scroll-positioned, terminal-sized projection of a
// ViewData (spec GLOSSARY "RenderSlice").
type Slice struct {
	Lines []view.ViewLine

	width, height int

	lastName    string
	lastVersion uint64

	scroll       scrollPosition
	perViewCache map[string]scrollPosition

	paddingHeight     int
	shouldShowScrollbar bool
	visibleBody         int
	visibleWidth        int
	linesLength         int
	maxLineLength       int

	pending  []Action
	resizeAt map[int]ResizeAction
}

// New returns an empty Slice sized to w x h.
func New(w, h int) *Slice {
	return &Slice{
		width:        w,
		height:       h,
		perViewCache: make(map[string]scrollPosition),
	}
}

// PushAction enqueues a scroll/page action to be drained on the next Sync.
func (s *Slice) PushAction(a Action) { s.pending = append(s.pending, a) }

// PushResize enqueues a Resize(w,h) action to be drained on the next Sync.
func (s *Slice) PushResize(w, h int) {
	if s.resizeAt == nil {
		s.resizeAt = make(map[int]ResizeAction)
	}
	s.resizeAt[len(s.pending)] = ResizeAction{Width: w, Height: h}
	s.pending = append(s.pending, -1) // sentinel consumed specially in drain
}

// Top and Left expose the current scroll position, mostly for tests
// asserting property #5's clamp bounds.
func (s *Slice) Top() int  { return s.scroll.top }
func (s *Slice) Left() int { return s.scroll.left }

// ShouldShowScrollbar reports whether the body overflows the viewport.
func (s *Slice) ShouldShowScrollbar() bool { return s.shouldShowScrollbar }

// Sync applies one Render cycle's worth of pending actions against vd and
// rebuilds Lines (spec §4.4, steps 1-8).
func (s *Slice) Sync(vd view.ViewData) {
	nameChanged := s.lastName != vd.Name
	versionChanged := s.lastVersion != vd.Version
	if nameChanged || versionChanged {
		s.paddingHeight = len(vd.Leading) + len(vd.Trailing)
		if vd.ShowTitle {
			s.paddingHeight++
		}
	}

	if nameChanged {
		if s.lastName != "" {
			s.perViewCache[s.lastName] = s.scroll
		}
		if cached, ok := s.perViewCache[vd.Name]; ok {
			s.scroll = cached
		} else {
			s.scroll = scrollPosition{}
		}
		if s.scroll.version != vd.ScrollVersion || !vd.RetainScrollPosition {
			s.scroll.top = 0
			s.scroll.left = 0
		}
		s.scroll.version = vd.ScrollVersion
	}

	s.linesLength = len(vd.Body)
	s.maxLineLength = maxLineWidth(vd.Body)
	s.scroll.linesLength = s.linesLength
	s.scroll.maxLineLength = s.maxLineLength

	s.drainPending()

	s.visibleBody = max0(s.height - s.paddingHeight)
	scrollbarCols := 0
	if s.shouldShowScrollbar {
		scrollbarCols = 1
	}
	s.visibleWidth = max0(s.width - scrollbarCols)

	s.scroll.top = clamp(s.scroll.top, 0, max0(s.linesLength-s.visibleBody))
	s.scroll.left = clamp(s.scroll.left, 0, max0(s.maxLineLength-s.visibleWidth))

	s.shouldShowScrollbar = s.visibleBody < s.linesLength
	if s.shouldShowScrollbar {
		scrollbarCols = 1
	} else {
		scrollbarCols = 0
	}
	s.visibleWidth = max0(s.width - scrollbarCols)
	s.scroll.left = clamp(s.scroll.left, 0, max0(s.maxLineLength-s.visibleWidth))

	if vd.VisibleRow != nil {
		s.scroll.top = withinWindow(*vd.VisibleRow, s.scroll.top, s.visibleBody)
	}
	if vd.VisibleColumn != nil {
		s.scroll.left = withinWindow(*vd.VisibleColumn, s.scroll.left, s.visibleWidth)
	}

	s.lastName = vd.Name
	s.lastVersion = vd.Version

	s.Lines = s.assemble(vd)
}

func (s *Slice) drainPending() {
	for i, a := range s.pending {
		if a == -1 {
			r := s.resizeAt[i]
			s.width, s.height = r.Width, r.Height
			continue
		}
		switch a {
		case ScrollUp:
			s.scroll.top--
		case ScrollDown:
			s.scroll.top++
		case PageUp:
			s.scroll.top -= max0(s.height / 2)
		case PageDown:
			s.scroll.top += max0(s.height / 2)
		case ScrollLeft:
			s.scroll.left--
		case ScrollRight:
			s.scroll.left++
		}
	}
	s.pending = s.pending[:0]
	s.resizeAt = nil
}

func (s *Slice) assemble(vd view.ViewData) []view.ViewLine {
	avail := s.height
	out := make([]view.ViewLine, 0, s.height)

	leading := vd.Leading
	if len(leading) > avail {
		leading = leading[:avail]
	}
	for _, l := range leading {
		out = append(out, s.clipLine(l))
		avail--
	}

	trailing := vd.Trailing
	if len(trailing) > avail {
		trailing = trailing[len(trailing)-avail:]
	}
	bodyAvail := max0(avail - len(trailing))

	lo := s.scroll.top
	hi := min(lo+bodyAvail, len(vd.Body))
	for i := lo; i < hi; i++ {
		out = append(out, s.clipLine(vd.Body[i]))
	}
	for i := hi - lo; i < bodyAvail; i++ {
		out = append(out, view.ViewLine{})
	}

	for _, l := range trailing {
		out = append(out, s.clipLine(l))
	}
	return out
}

// clipLine horizontally clips a ViewLine's non-pinned segments by
// s.scroll.left graphemes, then trims/pads to s.visibleWidth (spec §4.4
// step 8).
func (s *Slice) clipLine(l view.ViewLine) view.ViewLine {
	skip := s.scroll.left
	width := s.visibleWidth

	out := view.ViewLine{Selected: l.Selected, PinnedCount: l.PinnedCount, Padding: l.Padding}
	for i, seg := range l.Segments {
		if i < l.PinnedCount {
			out.Segments = append(out.Segments, seg)
			width -= seg.GraphemeLen()
			continue
		}
		text := seg.Text
		if skip > 0 {
			clusters := view.GraphemeSlice(text)
			if skip >= len(clusters) {
				skip -= len(clusters)
				continue
			}
			text = strings.Join(clusters[skip:], "")
			skip = 0
		}
		if width <= 0 {
			continue
		}
		n := view.GraphemeLen(text)
		if n > width {
			text = strings.Join(view.GraphemeSlice(text)[:width], "")
			n = width
		}
		clipped := view.NewSegment(text)
		clipped.Color, clipped.Dim, clipped.Underline, clipped.Reversed = seg.Color, seg.Dim, seg.Underline, seg.Reversed
		out.Segments = append(out.Segments, clipped)
		width -= n
	}

	if width > 0 && l.Padding != nil {
		pad := view.NewSegment(tilePadding(l.Padding.Text, width))
		pad.Color, pad.Dim, pad.Underline, pad.Reversed = l.Padding.Color, l.Padding.Dim, l.Padding.Underline, l.Padding.Reversed
		out.Segments = append(out.Segments, pad)
	}
	return out
}

// tilePadding repeats pad.Text's rune (falling back to a space) until it
// covers exactly width grapheme columns.
func tilePadding(unit string, width int) string {
	if unit == "" {
		unit = " "
	}
	var b strings.Builder
	for view.GraphemeLen(b.String()) < width {
		b.WriteString(unit)
	}
	return strings.Join(view.GraphemeSlice(b.String())[:width], "")
}

func maxLineWidth(lines []view.ViewLine) int {
	max := 0
	for _, l := range lines {
		w := 0
		for _, seg := range l.Segments {
			w += seg.GraphemeLen()
		}
		if w > max {
			max = w
		}
	}
	return max
}

func withinWindow(row, top, visible int) int {
	if visible <= 0 {
		return top
	}
	if row < top {
		return row
	}
	if row >= top+visible {
		return row - visible + 1
	}
	return top
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
