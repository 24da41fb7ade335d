package module

import (
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// Error displays a message and returns to the prior state on any key
// (spec §4.2 "Error / WindowSizeError").
type Error struct {
	Message string
	prev    State
}

func NewError(message string) *Error { return &Error{Message: message} }

func (e *Error) Activate(prev State) ProcessResult {
	e.prev = prev
	return noResult()
}

func (e *Error) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind == events.KindKey || ev.Kind == events.KindMeta {
		return stateResult(e.prev)
	}
	return noResult()
}

func (e *Error) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	return &view.ViewData{
		Name:    "error",
		Version: tf.Version,
		Leading: []view.ViewLine{
			view.NewViewLine(view.NewSegment("error: " + e.Message)),
			view.NewViewLine(view.NewSegment("press any key to continue")),
		},
	}
}

// WindowSizeError is entered whenever the terminal drops below the
// minimum usable size (width < 34 or height < 6) and suppresses all
// input except Exit/Kill until a Resize restores sufficient size.
type WindowSizeError struct {
	prev          State
	width, height int
}

const (
	MinWidth  = 34
	MinHeight = 6
)

func NewWindowSizeError() *WindowSizeError { return &WindowSizeError{} }

func (w *WindowSizeError) Activate(prev State) ProcessResult {
	w.prev = prev
	return noResult()
}

func (w *WindowSizeError) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind == events.KindResize {
		w.width, w.height = ev.Width, ev.Height
		if ev.Width >= MinWidth && ev.Height >= MinHeight {
			return stateResult(w.prev)
		}
		return noResult()
	}
	if ev.Kind == events.KindStandard && (ev.Standard == events.StandardExit || ev.Standard == events.StandardKill) {
		return exitResult(ExitKill)
	}
	return noResult()
}

func (w *WindowSizeError) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	return &view.ViewData{
		Name:    "window-size-error",
		Version: tf.Version,
		Leading: []view.ViewLine{view.NewViewLine(view.NewSegment("terminal window too small"))},
	}
}
