// Package search implements the incremental, cancellable, hint-seeded
// matcher over the todo list (spec §4.5).
package search

import (
	"strings"

	"github.com/akavel/girt/internal/todo"
)

// Row is the minimal view of a todo line the matcher needs.
type Row struct {
	Action  todo.Action
	Hash    string
	Content string
}

// Searchable is anything the search engine can scan; in girt this is
// TodoSearchable, which the List module wraps around its TodoFile (spec
// GLOSSARY "Searchable").
type Searchable interface {
	Len() int
	Row(i int) Row
	Version() uint64
}

// TodoSearchable adapts a *todo.TodoFile to Searchable.
type TodoSearchable struct {
	File *todo.TodoFile
}

func (s TodoSearchable) Len() int { return len(s.File.Lines) }

func (s TodoSearchable) Row(i int) Row {
	l := s.File.Lines[i]
	return Row{Action: l.Action, Hash: l.Hash, Content: l.Content}
}

func (s TodoSearchable) Version() uint64 { return s.File.Version }

// Engine holds the state of one incremental search.
type Engine struct {
	matches       []int
	selected      *int
	hintStartRow  int
	term          string
	cachedVersion uint64
	haveCache     bool

	// scanning/scanIndex track an in-progress time-sliced scan driven by
	// SearchSlice (slice.go); Search itself always runs to completion.
	scanning bool
	scanIndex int
}

// NewEngine returns an empty search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetHint seeds the "start near this index" row used by Next/Previous
// when there is no current selection.
func (e *Engine) SetHint(row int) { e.hintStartRow = row }

// Term returns the current search term.
func (e *Engine) Term() string { return e.term }

// Matches returns the current match row indices.
func (e *Engine) Matches() []int { return e.matches }

// Selected returns the currently selected match row, if any.
func (e *Engine) Selected() (int, bool) {
	if e.selected == nil {
		return 0, false
	}
	return *e.selected, true
}

// Search rebuilds matches if the source's version changed, the term
// changed, or there are no cached matches yet. It returns whether any
// match was found.
func (e *Engine) Search(src Searchable, term string) bool {
	version := src.Version()
	if e.haveCache && version == e.cachedVersion && term == e.term && len(e.matches) > 0 {
		return len(e.matches) > 0
	}

	e.matches = e.matches[:0]
	for i := 0; i < src.Len(); i++ {
		row := src.Row(i)
		if matchesRow(row, term) {
			e.matches = append(e.matches, i)
		}
	}
	e.term = term
	e.cachedVersion = version
	e.haveCache = true
	e.selected = nil
	return len(e.matches) > 0
}

func matchesRow(row Row, term string) bool {
	if term == "" {
		return false
	}
	switch {
	case row.Action == todo.Break || row.Action == todo.Noop:
		return false
	case row.Action.IsCommitReferencing():
		return strings.HasPrefix(row.Hash, term) || strings.Contains(row.Content, term)
	case row.Action.IsEditable():
		return strings.Contains(row.Content, term)
	default:
		return false
	}
}

// Next runs Search, then advances to the next match (wrapping), seeding
// from hintStartRow when there is no current selection.
func (e *Engine) Next(src Searchable, term string) (int, bool) {
	if !e.Search(src, term) {
		return 0, false
	}
	if e.selected == nil {
		row := e.firstAtOrAfter(e.hintStartRow)
		e.selected = &row
	} else {
		idx := e.indexOfSelected()
		idx = (idx + 1) % len(e.matches)
		next := e.matches[idx]
		e.selected = &next
	}
	e.hintStartRow = *e.selected
	return *e.selected, true
}

// Previous is Next's mirror image.
func (e *Engine) Previous(src Searchable, term string) (int, bool) {
	if !e.Search(src, term) {
		return 0, false
	}
	if e.selected == nil {
		row := e.lastAtOrBefore(e.hintStartRow)
		e.selected = &row
	} else {
		idx := e.indexOfSelected()
		idx = (idx - 1 + len(e.matches)) % len(e.matches)
		prev := e.matches[idx]
		e.selected = &prev
	}
	e.hintStartRow = *e.selected
	return *e.selected, true
}

func (e *Engine) indexOfSelected() int {
	if e.selected == nil {
		return 0
	}
	for i, row := range e.matches {
		if row == *e.selected {
			return i
		}
	}
	return 0
}

func (e *Engine) firstAtOrAfter(hint int) int {
	for _, row := range e.matches {
		if row >= hint {
			return row
		}
	}
	return e.matches[0]
}

func (e *Engine) lastAtOrBefore(hint int) int {
	for i := len(e.matches) - 1; i >= 0; i-- {
		if e.matches[i] <= hint {
			return e.matches[i]
		}
	}
	return e.matches[len(e.matches)-1]
}

// Cancel clears matches, selection, and term. O(1) apart from GC of the
// match slice.
func (e *Engine) Cancel() {
	e.matches = nil
	e.selected = nil
	e.term = ""
	e.haveCache = false
	e.scanning = false
	e.scanIndex = 0
}

// Invalidate clears only the cached matches, forcing the next Search to
// rebuild (used when TodoFile.Version changes).
func (e *Engine) Invalidate() {
	e.matches = nil
	e.haveCache = false
	e.scanning = false
	e.scanIndex = 0
}
