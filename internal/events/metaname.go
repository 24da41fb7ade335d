package events

// metaNames gives every Meta a stable config-file identifier, used both to
// print a binding table and to parse one supplied by an external
// configuration source (spec §6 "Key binding config").
var metaNames = map[Meta]string{
	MetaMoveCursorUp:               "MoveCursorUp",
	MetaMoveCursorDown:             "MoveCursorDown",
	MetaMoveCursorLeft:             "MoveCursorLeft",
	MetaMoveCursorRight:            "MoveCursorRight",
	MetaMoveCursorHome:             "MoveCursorHome",
	MetaMoveCursorEnd:              "MoveCursorEnd",
	MetaMoveCursorPageUp:           "MoveCursorPageUp",
	MetaMoveCursorPageDown:         "MoveCursorPageDown",
	MetaSwapSelectedUp:             "SwapSelectedUp",
	MetaSwapSelectedDown:           "SwapSelectedDown",
	MetaActionPick:                 "ActionPick",
	MetaActionReword:               "ActionReword",
	MetaActionEdit:                 "ActionEdit",
	MetaActionSquash:               "ActionSquash",
	MetaActionFixup:                "ActionFixup",
	MetaActionDrop:                 "ActionDrop",
	MetaActionBreak:                "ActionBreak",
	MetaAbort:                      "Abort",
	MetaForceAbort:                 "ForceAbort",
	MetaRebase:                     "Rebase",
	MetaForceRebase:                "ForceRebase",
	MetaUndo:                       "Undo",
	MetaRedo:                       "Redo",
	MetaDelete:                     "Delete",
	MetaDuplicate:                  "Duplicate",
	MetaInsert:                     "Insert",
	MetaOpenInEditor:               "OpenInEditor",
	MetaToggleVisualMode:           "ToggleVisualMode",
	MetaHelp:                       "Help",
	MetaShowCommit:                 "ShowCommit",
	MetaSearchStart:                "SearchStart",
	MetaSearchNext:                 "SearchNext",
	MetaSearchPrevious:             "SearchPrevious",
	MetaFixupKeepMessage:           "FixupKeepMessage",
	MetaFixupKeepMessageWithEditor: "FixupKeepMessageWithEditor",
	MetaConfirmYes:                 "ConfirmYes",
	MetaConfirmNo:                  "ConfirmNo",
	MetaToggleDiffView:             "ToggleDiffView",
	MetaScrollUp:                   "ScrollUp",
	MetaScrollDown:                 "ScrollDown",
	MetaScrollLeft:                 "ScrollLeft",
	MetaScrollRight:                "ScrollRight",
	MetaPageUp:                     "PageUp",
	MetaPageDown:                   "PageDown",
}

var metaByName map[string]Meta

func init() {
	metaByName = make(map[string]Meta, len(metaNames))
	for m, name := range metaNames {
		metaByName[name] = m
	}
}

// String returns m's config-file identifier, or "" for MetaNone.
func (m Meta) String() string { return metaNames[m] }

// ParseMeta looks up a Meta by its config-file identifier.
func ParseMeta(name string) (Meta, bool) {
	m, ok := metaByName[name]
	return m, ok
}

// AllNames returns every Meta's config-file identifier, for callers that
// need to probe an external configuration source key by key.
func AllNames() []string {
	names := make([]string, 0, len(metaNames))
	for _, name := range metaNames {
		names = append(names, name)
	}
	return names
}

// FromNames builds a KeyBindings table from a Meta-name -> key-names map,
// as produced by overlaying an external configuration source on top of
// DefaultKeyBindings (spec §6). Unrecognized names are skipped.
func FromNames(names map[string][]string) *KeyBindings {
	byMeta := make(map[Meta][]string, len(names))
	for name, keys := range names {
		if m, ok := ParseMeta(name); ok {
			byMeta[m] = keys
		}
	}
	return NewKeyBindings(byMeta)
}
