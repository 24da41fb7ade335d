package module

import (
	"github.com/akavel/girt/internal/editline"
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// subMode is one of List's three sub-modes (spec §4.2 "List module").
type subMode int

const (
	modeNormal subMode = iota
	modeVisual
	modeEdit
)

// List is the initial, primary module: browsing and mutating the todo
// list in normal or visual sub-mode, or editing one line's content.
type List struct {
	Bindings       *events.KeyBindings
	AutoSelectNext bool

	mode   subMode
	anchor int // visual-mode selection anchor

	edit       *editline.Line
	editAction todo.Action

	search        *search.Engine
	searchTerm    string
	searching     bool
}

// NewList builds a List module bound to kb (nil selects the defaults).
func NewList(kb *events.KeyBindings, autoSelectNext bool) *List {
	if kb == nil {
		kb = events.DefaultKeyBindings()
	}
	return &List{Bindings: kb, AutoSelectNext: autoSelectNext, search: search.NewEngine()}
}

func (l *List) Activate(prev State) ProcessResult { return noResult() }

func (l *List) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if l.mode == modeEdit {
		return l.handleEdit(ev, tf)
	}
	if l.searching && ev.Kind == events.KindKey {
		return l.handleSearchInput(ev, tf)
	}

	meta, ok := ev.Meta, ev.Kind == events.KindMeta
	if !ok {
		if ev.Kind == events.KindKey {
			if m, bound := l.Bindings.Translate(ev); bound {
				meta, ok = m, true
			}
		}
	}
	if !ok {
		return noResult()
	}

	switch meta {
	case events.MetaMoveCursorUp:
		l.moveCursor(tf, tf.SelectedIndex-1)
	case events.MetaMoveCursorDown:
		l.moveCursor(tf, tf.SelectedIndex+1)
	case events.MetaMoveCursorHome:
		l.moveCursor(tf, 0)
	case events.MetaMoveCursorEnd:
		l.moveCursor(tf, tf.MaxSelectedLineIndex())
	case events.MetaSwapSelectedUp:
		l.swap(tf, true)
	case events.MetaSwapSelectedDown:
		l.swap(tf, false)
	case events.MetaActionPick:
		l.applyAction(tf, todo.Pick)
	case events.MetaActionReword:
		l.applyAction(tf, todo.Reword)
	case events.MetaActionEdit:
		return l.handleEditKey(tf)
	case events.MetaActionSquash:
		l.applyAction(tf, todo.Squash)
	case events.MetaActionFixup:
		l.applyAction(tf, todo.Fixup)
	case events.MetaActionDrop:
		l.applyAction(tf, todo.Drop)
	case events.MetaActionBreak:
		l.toggleBreak(tf)
	case events.MetaAbort:
		return stateResult(StateConfirmAbort)
	case events.MetaForceAbort:
		tf.SetLines(nil)
		return exitResult(ExitAbort)
	case events.MetaRebase:
		return stateResult(StateConfirmRebase)
	case events.MetaForceRebase:
		return exitResult(ExitGood)
	case events.MetaUndo:
		if _, start, end, ok := tf.Undo(); ok && start != end {
			l.mode = modeVisual
			l.anchor = end
		}
	case events.MetaRedo:
		if _, start, end, ok := tf.Redo(); ok && start != end {
			l.mode = modeVisual
			l.anchor = end
		}
	case events.MetaDelete:
		l.deleteSelection(tf)
	case events.MetaDuplicate:
		l.duplicateSelection(tf)
	case events.MetaInsert:
		return stateResult(StateInsert)
	case events.MetaOpenInEditor:
		return ProcessResult{NextState: statePtr(StateExternalEditor)}
	case events.MetaToggleVisualMode:
		l.toggleVisual(tf)
	case events.MetaShowCommit:
		if tf.SelectedIndex < len(tf.Lines) && tf.Lines[tf.SelectedIndex].Action.IsCommitReferencing() {
			return stateResult(StateShowCommit)
		}
	case events.MetaSearchStart:
		l.searching = true
		l.searchTerm = ""
	case events.MetaSearchNext:
		l.runSearch(tf, true)
	case events.MetaSearchPrevious:
		l.runSearch(tf, false)
	case events.MetaFixupKeepMessage:
		l.applyFixupOption(tf, "-c", true)
	case events.MetaFixupKeepMessageWithEditor:
		l.applyFixupOption(tf, "-c", false)
	}
	return noResult()
}

func statePtr(s State) *State { return &s }

func (l *List) handleEditKey(tf *todo.TodoFile) ProcessResult {
	if tf.SelectedIndex >= len(tf.Lines) {
		return noResult()
	}
	line := tf.Lines[tf.SelectedIndex]
	if !line.Action.IsEditable() {
		l.applyAction(tf, todo.Edit)
		return noResult()
	}
	l.mode = modeEdit
	l.editAction = line.Action
	l.edit = editline.New(line.Action.String(), line.Content)
	return noResult()
}

func (l *List) handleEdit(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind != events.KindKey {
		return noResult()
	}
	switch {
	case ev.KeyCode == events.KeyEnter:
		content := l.edit.Content()
		tf.UpdateRange(tf.SelectedIndex, tf.SelectedIndex, todo.EditContext{Content: &content})
		l.mode = modeNormal
		l.edit = nil
	case ev.KeyCode == events.KeyEsc:
		l.mode = modeNormal
		l.edit = nil
	case ev.KeyCode == events.KeyBackspace:
		l.edit.Backspace()
	case ev.KeyCode == events.KeyDelete:
		l.edit.Delete()
	case ev.KeyCode == events.KeyHome:
		l.edit.Home()
	case ev.KeyCode == events.KeyEnd:
		l.edit.End()
	case ev.KeyCode == events.KeyLeft:
		l.edit.Left()
	case ev.KeyCode == events.KeyRight:
		l.edit.Right()
	case ev.KeyCode == events.KeyRune:
		l.edit.InsertRune(ev.Rune)
	}
	return noResult()
}

func (l *List) handleSearchInput(ev events.Event, tf *todo.TodoFile) ProcessResult {
	switch ev.KeyCode {
	case events.KeyEnter:
		l.searching = false
		l.runSearch(tf, true)
	case events.KeyEsc:
		l.searching = false
		l.search.Cancel()
	case events.KeyBackspace:
		if n := len(l.searchTerm); n > 0 {
			l.searchTerm = l.searchTerm[:n-1]
		}
	case events.KeyRune:
		l.searchTerm += string(ev.Rune)
	}
	return noResult()
}

func (l *List) runSearch(tf *todo.TodoFile, forward bool) {
	src := search.TodoSearchable{File: tf}
	l.search.SetHint(tf.SelectedIndex)
	var row int
	var ok bool
	if forward {
		row, ok = l.search.Next(src, l.searchTerm)
	} else {
		row, ok = l.search.Previous(src, l.searchTerm)
	}
	if ok {
		tf.SetSelectedLineIndex(row)
	}
}

func (l *List) moveCursor(tf *todo.TodoFile, target int) {
	tf.SetSelectedLineIndex(target)
	if l.mode == modeVisual {
		// anchor stays; selection range is implicit in [anchor, SelectedIndex]
	}
}

func (l *List) visualRange(tf *todo.TodoFile) (int, int) {
	lo, hi := l.anchor, tf.SelectedIndex
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (l *List) toggleVisual(tf *todo.TodoFile) {
	if l.mode == modeVisual {
		l.mode = modeNormal
		return
	}
	l.mode = modeVisual
	l.anchor = tf.SelectedIndex
}

func (l *List) swap(tf *todo.TodoFile, up bool) {
	start, end := tf.SelectedIndex, tf.SelectedIndex
	if l.mode == modeVisual {
		start, end = l.visualRange(tf)
	}
	var moved bool
	if up {
		moved = tf.SwapRangeUp(start, end)
	} else {
		moved = tf.SwapRangeDown(start, end)
	}
	if moved && l.mode == modeVisual {
		delta := -1
		if !up {
			delta = 1
		}
		l.anchor += delta
	}
}

func (l *List) applyAction(tf *todo.TodoFile, action todo.Action) {
	start, end := tf.SelectedIndex, tf.SelectedIndex
	if l.mode == modeVisual {
		start, end = l.visualRange(tf)
	}
	a := action
	tf.UpdateRange(start, end, todo.EditContext{Action: &a})
	if l.mode == modeNormal && l.AutoSelectNext && action.IsCommitReferencing() {
		tf.SetSelectedLineIndex(tf.SelectedIndex + 1)
	}
	if l.mode == modeVisual {
		l.mode = modeNormal
	}
}

func (l *List) applyFixupOption(tf *todo.TodoFile, option string, keepMessage bool) {
	if tf.SelectedIndex >= len(tf.Lines) {
		return
	}
	a := todo.Fixup
	edit := todo.EditContext{Action: &a}
	if keepMessage {
		edit.ToggleOption = &option
	}
	tf.UpdateRange(tf.SelectedIndex, tf.SelectedIndex, edit)
}

func (l *List) toggleBreak(tf *todo.TodoFile) {
	i := tf.SelectedIndex
	if i < len(tf.Lines) && tf.Lines[i].Action == todo.Break {
		tf.RemoveLines(i, i)
		tf.SetSelectedLineIndex(i - 1)
		return
	}
	if i+1 < len(tf.Lines) && tf.Lines[i+1].Action == todo.Break {
		return
	}
	brk, _ := todo.NewLine(todo.Break, "", "", "")
	tf.AddLine(i+1, brk)
	tf.SetSelectedLineIndex(i + 1)
}

func (l *List) deleteSelection(tf *todo.TodoFile) {
	start, end := tf.SelectedIndex, tf.SelectedIndex
	if l.mode == modeVisual {
		start, end = l.visualRange(tf)
		l.mode = modeNormal
	}
	tf.RemoveLines(start, end)
}

func (l *List) duplicateSelection(tf *todo.TodoFile) {
	if tf.SelectedIndex >= len(tf.Lines) {
		return
	}
	src := tf.Lines[tf.SelectedIndex]
	dup, err := todo.NewLine(src.Action, src.Hash, src.Content, src.Option)
	if err != nil {
		return
	}
	tf.AddLine(tf.SelectedIndex+1, dup)
	tf.SetSelectedLineIndex(tf.SelectedIndex + 1)
}

func (l *List) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	body := make([]view.ViewLine, len(tf.Lines))
	lo, hi := -1, -1
	if l.mode == modeVisual {
		lo, hi = l.visualRange(tf)
	}
	for i, line := range tf.Lines {
		text := line.Text()
		seg := view.NewSegment(text)
		if i == tf.SelectedIndex && l.mode == modeEdit {
			rs := l.edit.Render()
			body[i] = view.NewViewLine(
				view.NewSegment(l.edit.Label()+" "),
				view.NewSegment(rs.Prefix),
				view.LineSegment{Text: rs.Cursor, Underline: true},
				view.NewSegment(rs.Suffix),
			)
			continue
		}
		selected := i >= lo && i <= hi
		if l.mode != modeVisual {
			selected = i == tf.SelectedIndex
		}
		body[i] = view.ViewLine{Segments: []view.LineSegment{seg}, Selected: selected}
	}
	row := tf.SelectedIndex
	vd := &view.ViewData{
		Name:    "list",
		Version: tf.Version,
		Body:    body,
		VisibleRow: &row,
	}
	return vd
}
