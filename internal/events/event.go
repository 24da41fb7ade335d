// Package events defines the tagged Event union (spec §3), the bounded
// EventQueue, and the KeyBindings table that turns raw key sequences
// into named Meta events (spec §4.3, §6).
package events

// Kind discriminates the Event tagged union.
type Kind int

const (
	KindNone Kind = iota
	KindKey
	KindMouse
	KindResize
	KindMeta
	KindStandard
)

// KeyCode names a pressed key. Printable characters use KeyRune with
// Rune set; everything else uses one of the named constants.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyFn
	KeyNull
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers int

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseKind names the kind of mouse action in a Mouse event.
type MouseKind int

const (
	MouseNone MouseKind = iota
	MousePress
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// Meta is a named semantic event produced by KeyBindings from raw key
// input (spec GLOSSARY).
type Meta int

const (
	MetaNone Meta = iota
	MetaMoveCursorUp
	MetaMoveCursorDown
	MetaMoveCursorLeft
	MetaMoveCursorRight
	MetaMoveCursorHome
	MetaMoveCursorEnd
	MetaMoveCursorPageUp
	MetaMoveCursorPageDown
	MetaSwapSelectedUp
	MetaSwapSelectedDown
	MetaActionPick
	MetaActionReword
	MetaActionEdit
	MetaActionSquash
	MetaActionFixup
	MetaActionDrop
	MetaActionBreak
	MetaAbort
	MetaForceAbort
	MetaRebase
	MetaForceRebase
	MetaUndo
	MetaRedo
	MetaDelete
	MetaDuplicate
	MetaInsert
	MetaOpenInEditor
	MetaToggleVisualMode
	MetaHelp
	MetaShowCommit
	MetaSearchStart
	MetaSearchNext
	MetaSearchPrevious
	MetaFixupKeepMessage
	MetaFixupKeepMessageWithEditor
	MetaConfirmYes
	MetaConfirmNo
	MetaToggleDiffView
	MetaScrollUp
	MetaScrollDown
	MetaScrollLeft
	MetaScrollRight
	MetaPageUp
	MetaPageDown
)

// Standard is a named event produced by the system itself rather than by
// a key press (spec §3).
type Standard int

const (
	StandardNone Standard = iota
	StandardExternalCommandSuccess
	StandardExternalCommandError
	StandardSearchStart
	StandardSearchFinish
	StandardSearchNext
	StandardSearchPrevious
	StandardSearchUpdate
	StandardKill
	StandardExit
	StandardResize
)

// Event is the tagged union all threads and modules exchange (spec §3).
type Event struct {
	Kind Kind

	KeyCode   KeyCode
	Rune      rune
	Modifiers Modifiers

	MouseKind   MouseKind
	Column, Row int

	Width, Height int

	Meta     Meta
	Standard Standard
}

// Key builds a KindKey event.
func Key(code KeyCode, mods Modifiers) Event { return Event{Kind: KindKey, KeyCode: code, Modifiers: mods} }

// RuneKey builds a printable-character KindKey event.
func RuneKey(r rune, mods Modifiers) Event {
	return Event{Kind: KindKey, KeyCode: KeyRune, Rune: r, Modifiers: mods}
}

// Resize builds a KindResize event.
func Resize(w, h int) Event { return Event{Kind: KindResize, Width: w, Height: h} }

// MetaEvent builds a KindMeta event.
func MetaEvent(m Meta) Event { return Event{Kind: KindMeta, Meta: m} }

// StandardEvent builds a KindStandard event.
func StandardEvent(s Standard) Event { return Event{Kind: KindStandard, Standard: s} }

// None is the zero, no-op event.
var None = Event{Kind: KindNone}
