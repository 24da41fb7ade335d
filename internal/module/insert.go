package module

import (
	"github.com/akavel/girt/internal/editline"
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// insertableActions lists the actions a user may choose for a brand new
// line (spec §4.2 "Insert"): actions that reference no commit (the
// content-only actions plus break), since a freshly inserted line has no
// commit hash.
var insertableActions = []todo.Action{todo.Exec, todo.Label, todo.Reset, todo.Merge, todo.UpdateRef, todo.Break}

// Insert lets the user choose an action, then compose its content via an
// EditableLine, and commits the new line on Enter.
type Insert struct {
	actionIdx int
	edit      *editline.Line
}

func NewInsert() *Insert { return &Insert{} }

func (i *Insert) Activate(prev State) ProcessResult {
	i.actionIdx = 0
	i.edit = editline.New(insertableActions[0].String(), "")
	return noResult()
}

func (i *Insert) action() todo.Action { return insertableActions[i.actionIdx] }

func (i *Insert) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind != events.KindKey {
		return noResult()
	}
	switch ev.KeyCode {
	case events.KeyTab:
		i.actionIdx = (i.actionIdx + 1) % len(insertableActions)
		i.edit = editline.New(i.action().String(), i.edit.Content())
	case events.KeyEsc:
		return stateResult(StateList)
	case events.KeyEnter:
		action := i.action()
		if action.IsBareKeyword() {
			line, err := todo.NewLine(action, "", "", "")
			if err != nil {
				return errResult(err)
			}
			tf.AddLine(tf.SelectedIndex+1, line)
		} else {
			line, err := todo.NewLine(action, "", i.edit.Content(), "")
			if err != nil {
				return errResult(err)
			}
			tf.AddLine(tf.SelectedIndex+1, line)
		}
		tf.SetSelectedLineIndex(tf.SelectedIndex + 1)
		return stateResult(StateList)
	case events.KeyBackspace:
		i.edit.Backspace()
	case events.KeyDelete:
		i.edit.Delete()
	case events.KeyHome:
		i.edit.Home()
	case events.KeyEnd:
		i.edit.End()
	case events.KeyLeft:
		i.edit.Left()
	case events.KeyRight:
		i.edit.Right()
	case events.KeyRune:
		i.edit.InsertRune(ev.Rune)
	}
	return noResult()
}

func (i *Insert) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	rs := i.edit.Render()
	line := view.NewViewLine(
		view.NewSegment(i.edit.Label()+" "),
		view.NewSegment(rs.Prefix),
		view.LineSegment{Text: rs.Cursor, Underline: true},
		view.NewSegment(rs.Suffix),
	)
	return &view.ViewData{Name: "insert", Version: tf.Version, Leading: []view.ViewLine{line}}
}
