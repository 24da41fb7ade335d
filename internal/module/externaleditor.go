package module

import (
	"strings"

	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

type editorSubState int

const (
	editorRunning editorSubState = iota
	editorEmpty
	editorError
)

// ExternalEditor writes the todo file, spawns the configured editor, and
// reacts to its outcome (spec §4.2 "ExternalEditor").
type ExternalEditor struct {
	EditorTemplate string

	sub    editorSubState
	errMsg string
}

// NewExternalEditor builds an ExternalEditor bound to the configured
// editor command template (spec §6: "%" is replaced by the todo-file
// path, or the path is appended if "%" is absent).
func NewExternalEditor(editorTemplate string) *ExternalEditor {
	return &ExternalEditor{EditorTemplate: editorTemplate}
}

func (e *ExternalEditor) Activate(prev State) ProcessResult {
	e.sub = editorRunning
	return ProcessResult{} // the caller (router) is responsible for writing tf and building the command
}

// BuildCommand renders the editor template against path, for the router
// to spawn after Activate returns (writing the todo file is the router's
// job since it alone owns synchronous I/O timing).
func (e *ExternalEditor) BuildCommand(path string) ExternalCommand {
	if strings.Contains(e.EditorTemplate, "%") {
		return ExternalCommand{Argv: strings.Fields(strings.ReplaceAll(e.EditorTemplate, "%", path))}
	}
	return ExternalCommand{Argv: append(strings.Fields(e.EditorTemplate), path)}
}

func (e *ExternalEditor) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind == events.KindStandard {
		switch ev.Standard {
		case events.StandardExternalCommandSuccess:
			if err := tf.Load(); err != nil {
				e.sub = editorError
				e.errMsg = err.Error()
				return noResult()
			}
			if len(tf.Lines) == 0 || tf.IsNoop {
				e.sub = editorEmpty
				return noResult()
			}
			return stateResult(StateList)
		case events.StandardExternalCommandError:
			e.sub = editorError
			e.errMsg = "external editor exited with an error"
			return noResult()
		}
		return noResult()
	}

	if ev.Kind != events.KindKey || ev.KeyCode != events.KeyRune {
		return noResult()
	}

	switch e.sub {
	case editorEmpty:
		switch ev.Rune {
		case '1':
			return exitResult(ExitGood)
		case '2':
			return ProcessResult{ExternalCommand: &ExternalCommand{}} // router re-invokes with current path
		case '3':
			tf.Undo()
			return ProcessResult{ExternalCommand: &ExternalCommand{}}
		}
	case editorError:
		switch ev.Rune {
		case '1':
			return exitResult(ExitAbort)
		case '2':
			return ProcessResult{ExternalCommand: &ExternalCommand{}}
		case '3':
			return stateResult(StateList) // restore: router leaves tf untouched, returns to List with prior in-memory lines
		case '4':
			tf.Undo()
			return ProcessResult{ExternalCommand: &ExternalCommand{}}
		}
	}
	return noResult()
}

func (e *ExternalEditor) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	var lines []view.ViewLine
	switch e.sub {
	case editorEmpty:
		lines = []view.ViewLine{
			view.NewViewLine(view.NewSegment("the todo list is empty")),
			view.NewViewLine(view.NewSegment("1: abort   2: re-edit   3: undo and re-edit")),
		}
	case editorError:
		lines = []view.ViewLine{
			view.NewViewLine(view.NewSegment("editor error: " + e.errMsg)),
			view.NewViewLine(view.NewSegment("1: abort   2: re-edit   3: restore+abort   4: undo and re-edit")),
		}
	default:
		lines = []view.ViewLine{view.NewViewLine(view.NewSegment("waiting for external editor..."))}
	}
	return &view.ViewData{Name: "external-editor", Version: tf.Version, Leading: lines}
}
