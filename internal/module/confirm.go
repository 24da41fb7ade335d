package module

import (
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// ConfirmKind distinguishes the abort and rebase confirmation prompts;
// both share the same yes/no mechanics (spec §4.2 "ConfirmAbort /
// ConfirmRebase").
type ConfirmKind int

const (
	ConfirmAbortKind ConfirmKind = iota
	ConfirmRebaseKind
)

// Confirm is the two-way Yes/No prompt module.
type Confirm struct {
	Bindings *events.KeyBindings
	Kind     ConfirmKind
	Prompt   string
}

// NewConfirm builds a Confirm module of the given kind.
func NewConfirm(kb *events.KeyBindings, kind ConfirmKind) *Confirm {
	if kb == nil {
		kb = events.ConfirmKeyBindings()
	}
	prompt := "Are you sure you want to abort? (y/n)"
	if kind == ConfirmRebaseKind {
		prompt = "Are you sure you want to rebase? (y/n)"
	}
	return &Confirm{Bindings: kb, Kind: kind, Prompt: prompt}
}

func (c *Confirm) Activate(prev State) ProcessResult { return noResult() }

func (c *Confirm) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind != events.KindKey {
		return noResult()
	}
	switch {
	case c.Bindings.MatchesSingleASCII(ev, events.MetaConfirmYes):
		if c.Kind == ConfirmAbortKind {
			tf.SetLines(nil)
		}
		return exitResult(ExitGood)
	case c.Bindings.MatchesSingleASCII(ev, events.MetaConfirmNo):
		return stateResult(StateList)
	case ev.KeyCode == events.KeyEsc:
		return stateResult(StateList)
	}
	return noResult()
}

func (c *Confirm) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	return &view.ViewData{
		Name:     "confirm",
		Version:  tf.Version,
		Leading:  []view.ViewLine{view.NewViewLine(view.NewSegment(c.Prompt))},
		ShowHelp: false,
	}
}
