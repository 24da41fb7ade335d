package todo

import (
	"fmt"
	"strings"
)

// FixupKeepMessage is the option token fixup uses to preserve the squashed
// commit's message instead of discarding it.
const FixupKeepMessage = "-c"

// Line is one instruction in the todo list.
type Line struct {
	Action  Action
	Hash    string
	Content string
	Option  string

	// originalSnapshot is the line's value as loaded (or as last recorded
	// into history), used to compute Mutated.
	originalSnapshot lineSnapshot
	hasSnapshot      bool
}

type lineSnapshot struct {
	action  Action
	hash    string
	content string
	option  string
}

// NewLine builds a Line and validates its invariants.
func NewLine(action Action, hash, content, option string) (Line, error) {
	l := Line{Action: action, Hash: hash, Content: content, Option: option}
	if err := l.validate(); err != nil {
		return Line{}, err
	}
	l.snapshot()
	return l, nil
}

func (l Line) validate() error {
	switch {
	case l.Action.IsCommitReferencing():
		if l.Hash == "" {
			return fmt.Errorf("action %q requires a commit hash", l.Action)
		}
	case l.Action.IsContentOnly():
		if l.Content == "" {
			return fmt.Errorf("action %q requires content", l.Action)
		}
		if l.Hash != "" {
			return fmt.Errorf("action %q must not carry a hash", l.Action)
		}
	case l.Action == Break || l.Action == Noop:
		if l.Hash != "" || l.Content != "" {
			return fmt.Errorf("action %q must not carry a hash or content", l.Action)
		}
	default:
		return fmt.Errorf("invalid action %v", l.Action)
	}
	if l.Option != "" && l.Action != Fixup {
		return fmt.Errorf("option is only valid on fixup lines")
	}
	return nil
}

// snapshot records the current field values as the baseline for Mutated.
func (l *Line) snapshot() {
	l.originalSnapshot = lineSnapshot{action: l.Action, hash: l.Hash, content: l.Content, option: l.Option}
	l.hasSnapshot = true
}

// Mutated reports whether the line differs from its recorded snapshot.
func (l Line) Mutated() bool {
	if !l.hasSnapshot {
		return false
	}
	s := l.originalSnapshot
	return s.action != l.Action || s.hash != l.Hash || s.content != l.Content || s.option != l.Option
}

// IsEditable reports whether an EditableLine may be opened on this line's content.
func (l Line) IsEditable() bool {
	return l.Action.IsEditable()
}

// IsDuplicatable reports whether this line may be duplicated.
func (l Line) IsDuplicatable() bool {
	return l.Action != Break && l.Action != Noop
}

// SetAction changes the action in place, dropping Option unless the new
// action is still Fixup. Static actions are never changed by this call.
func (l *Line) SetAction(a Action) {
	if l.Action.IsStatic() {
		return
	}
	l.Action = a
	if a != Fixup {
		l.Option = ""
	}
}

// SetContent changes the content in place, if the line is editable.
func (l *Line) SetContent(content string) {
	if !l.IsEditable() {
		return
	}
	l.Content = content
}

// ToggleOption flips the given option token: absent -> present, matching ->
// absent, different -> replaced.
func (l *Line) ToggleOption(option string) {
	switch l.Option {
	case option:
		l.Option = ""
	default:
		l.Option = option
	}
}

// Text renders the single-line text form used by the todo file format.
func (l Line) Text() string {
	switch {
	case l.Action.IsBareKeyword():
		return l.Action.String()
	case l.Action.IsCommitReferencing():
		if l.Option != "" {
			return fmt.Sprintf("%s %s %s %s", l.Action, l.Option, l.Hash, l.Content)
		}
		return fmt.Sprintf("%s %s %s", l.Action, l.Hash, l.Content)
	case l.Action.IsContentOnly():
		return fmt.Sprintf("%s %s", l.Action, l.Content)
	default:
		return l.Action.String()
	}
}

// ParseLine parses a single non-blank, non-comment todo-file line.
func ParseLine(raw string) (Line, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Line{}, fmt.Errorf("empty line")
	}
	keyword := fields[0]
	action, ok := ParseAction(keyword)
	if !ok {
		return Line{}, fmtUnknownAction(keyword)
	}
	rest := fields[1:]
	switch {
	case action.IsBareKeyword():
		return NewLine(action, "", "", "")
	case action == Fixup:
		switch {
		case len(rest) >= 3 && rest[0] == FixupKeepMessage:
			hash := rest[1]
			content := strings.Join(rest[2:], " ")
			return NewLine(action, hash, content, FixupKeepMessage)
		case len(rest) >= 2:
			hash := rest[0]
			content := strings.Join(rest[1:], " ")
			return NewLine(action, hash, content, "")
		default:
			return Line{}, fmt.Errorf("malformed fixup line: %q", raw)
		}
	case action.IsCommitReferencing():
		if len(rest) < 2 {
			return Line{}, fmt.Errorf("malformed %s line: %q", action, raw)
		}
		hash := rest[0]
		content := strings.Join(rest[1:], " ")
		return NewLine(action, hash, content, "")
	case action.IsContentOnly():
		if len(rest) < 1 {
			return Line{}, fmt.Errorf("malformed %s line: %q", action, raw)
		}
		content := strings.Join(rest, " ")
		return NewLine(action, "", content, "")
	default:
		return Line{}, fmt.Errorf("invalid action %v", action)
	}
}
