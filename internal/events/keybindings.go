package events

import (
	"strings"
)

// KeyBindings maps named Meta actions to one or more raw key-name strings
// (spec §6 "Key binding config"), e.g. "Up", "Controlz", "Shiftq", "a",
// "F12". It translates raw Key events into Meta events for modules that
// want named semantics instead of raw key codes.
type KeyBindings struct {
	names map[Meta][]string
	index map[string]Meta
}

// NewKeyBindings builds a KeyBindings table from a Meta->key-names map,
// building the reverse lookup index used by Translate.
func NewKeyBindings(names map[Meta][]string) *KeyBindings {
	kb := &KeyBindings{names: names, index: make(map[string]Meta)}
	for meta, keys := range names {
		for _, k := range keys {
			kb.index[k] = meta
		}
	}
	return kb
}

// DefaultKeyBindings returns the List module's default table (spec §4.2
// enumerates the full set of recognized meta-events). Translation is
// mode-scoped: this table covers only List's own keys. ConfirmYes/No and
// the ShowCommit scroll keys live in their own tables (ConfirmKeyBindings,
// ScrollKeyBindings) because several of their physical keys ("Up", "Down",
// "PageUp", "PageDown", "n") are reused for unrelated meanings in List and
// would otherwise collide in a single reverse name->Meta index.
func DefaultKeyBindings() *KeyBindings {
	return NewKeyBindings(defaultBindingTable())
}

// WithOverrides builds a KeyBindings starting from the built-in List
// defaults and replacing any entry named in overrides (a Meta-name ->
// key-names map, as loaded by config.Config.KeyBindings from the external
// configuration source, spec §6 "Key binding config"). Unrecognized
// names are skipped.
func WithOverrides(overrides map[string][]string) *KeyBindings {
	merged := defaultBindingTable()
	for name, keys := range overrides {
		if m, ok := ParseMeta(name); ok {
			merged[m] = keys
		}
	}
	return NewKeyBindings(merged)
}

func defaultBindingTable() map[Meta][]string {
	return map[Meta][]string{
		MetaMoveCursorUp:               {"Up", "k"},
		MetaMoveCursorDown:             {"Down", "j"},
		MetaMoveCursorLeft:             {"Left", "h"},
		MetaMoveCursorRight:            {"Right", "l"},
		MetaMoveCursorHome:             {"Home", "g"},
		MetaMoveCursorEnd:              {"End", "G"},
		MetaMoveCursorPageUp:           {"PageUp"},
		MetaMoveCursorPageDown:         {"PageDown"},
		MetaSwapSelectedUp:             {"ControlUp", "K"},
		MetaSwapSelectedDown:           {"ControlDown", "J"},
		MetaActionPick:                 {"p"},
		MetaActionReword:               {"r"},
		MetaActionEdit:                 {"e"},
		MetaActionSquash:               {"s"},
		MetaActionFixup:                {"f"},
		MetaActionDrop:                 {"d"},
		MetaActionBreak:                {"b"},
		MetaAbort:                      {"q"},
		MetaForceAbort:                 {"Q"},
		MetaRebase:                     {"w"},
		MetaForceRebase:                {"W"},
		MetaUndo:                       {"Controlz"},
		MetaRedo:                       {"Controly"},
		MetaDelete:                     {"Delete"},
		MetaDuplicate:                  {"Controld"},
		MetaInsert:                     {"I"},
		MetaOpenInEditor:               {"!"},
		MetaToggleVisualMode:           {"v"},
		MetaHelp:                       {"?"},
		MetaShowCommit:                 {"c"},
		MetaSearchStart:                {"/"},
		MetaSearchNext:                 {"n"},
		MetaSearchPrevious:             {"N"},
		MetaFixupKeepMessage:           {"F"},
		MetaFixupKeepMessageWithEditor: {"ControlF"},
	}
}

// ConfirmKeyBindings returns the Confirm module's yes/no table, kept
// separate from defaultBindingTable because "n" is also List's
// search-next key; Confirm only ever reads this table through
// MatchesSingleASCII (a forward lookup), never through Translate, so it
// never competes with List's reverse index for the same name.
func ConfirmKeyBindings() *KeyBindings {
	return NewKeyBindings(map[Meta][]string{
		MetaConfirmYes: {"y"},
		MetaConfirmNo:  {"n"},
	})
}

// ScrollKeyBindings returns the ShowCommit module's table: the same
// physical Up/Down/PageUp/PageDown keys List uses for cursor movement,
// here bound to scrolling instead. Kept out of defaultBindingTable so the
// two meanings never land in the same reverse index.
func ScrollKeyBindings() *KeyBindings {
	return NewKeyBindings(map[Meta][]string{
		MetaToggleDiffView: {"Tab"},
		MetaScrollUp:       {"Up"},
		MetaScrollDown:     {"Down"},
		MetaScrollLeft:     {"ControlLeft"},
		MetaScrollRight:    {"ControlRight"},
		MetaPageUp:         {"PageUp"},
		MetaPageDown:       {"PageDown"},
	})
}

// KeyName renders ev (a KindKey event) as a config-file key-name string,
// e.g. "Up", "Controlz", "Shiftq", "a", "F12".
func KeyName(ev Event) string {
	base := namedKey(ev.KeyCode)
	if ev.KeyCode == KeyRune {
		base = string(ev.Rune)
	}
	prefix := ""
	if ev.Modifiers&ModCtrl != 0 {
		prefix += "Control"
	}
	if ev.Modifiers&ModAlt != 0 {
		prefix += "Alt"
	}
	if ev.Modifiers&ModShift != 0 {
		prefix += "Shift"
	}
	return prefix + base
}

func namedKey(k KeyCode) string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyEnter:
		return "Enter"
	case KeyEsc:
		return "Esc"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyFn:
		return "Fn"
	case KeyNull:
		return "Null"
	default:
		return ""
	}
}

// Translate maps a raw Key event to its bound Meta event, if any.
func (kb *KeyBindings) Translate(ev Event) (Meta, bool) {
	if ev.Kind != KindKey {
		return MetaNone, false
	}
	name := KeyName(ev)
	meta, ok := kb.index[name]
	return meta, ok
}

// MatchesSingleASCII reports whether ev is a printable single-ASCII key
// press matching one of the bound names for meta, case-folded (spec §6:
// "for single-ASCII bindings used in confirm prompts, comparison folds
// case").
func (kb *KeyBindings) MatchesSingleASCII(ev Event, meta Meta) bool {
	if ev.Kind != KindKey || ev.KeyCode != KeyRune {
		return false
	}
	for _, bound := range kb.names[meta] {
		if len(bound) == 1 && strings.EqualFold(string(ev.Rune), bound) {
			return true
		}
	}
	return false
}
