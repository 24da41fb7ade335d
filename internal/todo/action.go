package todo

import "fmt"

// Action is the verb at the start of a todo line.
type Action int

const (
	Pick Action = iota
	Reword
	Edit
	Squash
	Fixup
	Drop
	Exec
	Break
	Label
	Reset
	Merge
	UpdateRef
	Noop
)

var actionNames = [...]string{
	Pick:      "pick",
	Reword:    "reword",
	Edit:      "edit",
	Squash:    "squash",
	Fixup:     "fixup",
	Drop:      "drop",
	Exec:      "exec",
	Break:     "break",
	Label:     "label",
	Reset:     "reset",
	Merge:     "merge",
	UpdateRef: "update-ref",
	Noop:      "noop",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = Action(a)
	}
	return m
}()

// String returns the lowercase keyword used in the todo file text form.
func (a Action) String() string {
	if int(a) < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a keyword back to an Action, or reports false if unknown.
func ParseAction(keyword string) (Action, bool) {
	a, ok := actionsByName[keyword]
	return a, ok
}

// IsCommitReferencing reports whether this action carries a commit hash.
func (a Action) IsCommitReferencing() bool {
	switch a {
	case Pick, Reword, Edit, Squash, Fixup, Drop:
		return true
	default:
		return false
	}
}

// IsStatic reports whether the action cannot be changed via set-action.
func (a Action) IsStatic() bool {
	switch a {
	case Break, Label, Reset, Merge, Exec, UpdateRef, Noop:
		return true
	default:
		return false
	}
}

// IsContentOnly reports whether the action carries free-form content and no hash.
func (a Action) IsContentOnly() bool {
	switch a {
	case Exec, Label, Reset, Merge, UpdateRef:
		return true
	default:
		return false
	}
}

// IsEditable reports whether the List module may open an EditableLine on this action's content.
func (a Action) IsEditable() bool {
	return a.IsContentOnly()
}

// IsBareKeyword reports whether the action's text form is the keyword alone.
func (a Action) IsBareKeyword() bool {
	return a == Break || a == Noop
}

func (a Action) valid() bool {
	return int(a) >= int(Pick) && int(a) <= int(Noop)
}

func fmtUnknownAction(keyword string) error {
	return fmt.Errorf("unknown action keyword: %q", keyword)
}
