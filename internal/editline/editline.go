// Package editline implements the grapheme-aware single-line editor state
// shared by insert/edit/search (spec §4.6).
package editline

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Line is a single-line editable buffer whose cursor advances in grapheme
// clusters, so multi-byte and combining characters are treated as one
// position each.
type Line struct {
	content string
	cursor  int // grapheme index, 0 <= cursor <= len(graphemes)
	label   string

	graphemes []string // cache, rebuilt lazily when content changes
	dirty     bool
}

// New returns a Line with the given label (used by the render contract)
// and initial content, with the cursor at the end.
func New(label, content string) *Line {
	l := &Line{label: label}
	l.SetContent(content)
	return l
}

// Label returns the editor's label, e.g. the action name in insert mode.
func (l *Line) Label() string { return l.label }

// Content returns the current text.
func (l *Line) Content() string { return l.content }

// CursorPosition returns the cursor's grapheme index.
func (l *Line) CursorPosition() int { return l.cursor }

// SetContent replaces the content and places the cursor at the end, per
// spec §8 testable property #7.
func (l *Line) SetContent(content string) {
	l.content = content
	l.dirty = true
	l.cursor = l.graphemeCount()
}

func (l *Line) ensureGraphemes() {
	if !l.dirty && l.graphemes != nil {
		return
	}
	l.graphemes = splitGraphemes(l.content)
	l.dirty = false
}

func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func (l *Line) graphemeCount() int {
	l.ensureGraphemes()
	return len(l.graphemes)
}

func (l *Line) rebuild() {
	s := ""
	for _, g := range l.graphemes {
		s += g
	}
	l.content = s
}

// Backspace deletes the grapheme before the cursor, if any.
func (l *Line) Backspace() {
	l.ensureGraphemes()
	if l.cursor <= 0 {
		return
	}
	l.graphemes = append(l.graphemes[:l.cursor-1], l.graphemes[l.cursor:]...)
	l.cursor--
	l.rebuild()
}

// Delete deletes the grapheme at the cursor, if any.
func (l *Line) Delete() {
	l.ensureGraphemes()
	if l.cursor >= len(l.graphemes) {
		return
	}
	l.graphemes = append(l.graphemes[:l.cursor], l.graphemes[l.cursor+1:]...)
	l.rebuild()
}

// Home moves the cursor to the start.
func (l *Line) Home() { l.cursor = 0 }

// End moves the cursor to the end.
func (l *Line) End() { l.cursor = l.graphemeCount() }

// Left moves the cursor one grapheme to the left, stopping at 0.
func (l *Line) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Right moves the cursor one grapheme to the right, stopping at the end.
func (l *Line) Right() {
	if l.cursor < l.graphemeCount() {
		l.cursor++
	}
}

// InsertRune inserts a single rune at the cursor and advances past it.
func (l *Line) InsertRune(r rune) {
	l.ensureGraphemes()
	g := string(r)
	l.graphemes = append(l.graphemes[:l.cursor:l.cursor], append([]string{g}, l.graphemes[l.cursor:]...)...)
	l.cursor++
	l.rebuild()
}

// RenderSegments describes the three pieces of the render contract: the
// text before the cursor grapheme, the cursor grapheme itself (or a
// single space when the cursor sits at the end), and the text after it.
type RenderSegments struct {
	Prefix string
	Cursor string
	Suffix string
}

// Render returns the segments the renderer should draw, per spec §4.6's
// render contract: prefix, a one-grapheme (or synthetic space) cursor
// cell carrying the underline style, then suffix.
func (l *Line) Render() RenderSegments {
	l.ensureGraphemes()
	prefix := ""
	for _, g := range l.graphemes[:l.cursor] {
		prefix += g
	}
	cursor := " "
	suffixStart := l.cursor
	if l.cursor < len(l.graphemes) {
		cursor = l.graphemes[l.cursor]
		suffixStart = l.cursor + 1
	}
	suffix := ""
	for _, g := range l.graphemes[suffixStart:] {
		suffix += g
	}
	return RenderSegments{Prefix: prefix, Cursor: cursor, Suffix: suffix}
}

// DisplayWidth returns the terminal column width of the content up to
// (not including) the cursor, for horizontal-scroll math.
func (l *Line) DisplayWidth() int {
	l.ensureGraphemes()
	w := 0
	for _, g := range l.graphemes[:l.cursor] {
		w += runewidth.StringWidth(g)
	}
	return w
}
