package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/akavel/girt/internal/events"
)

func translateTcellEvent(ev tcell.Event) events.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventMouse:
		return translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return events.Resize(w, h)
	case *tcell.EventInterrupt:
		return events.StandardEvent(events.StandardSearchUpdate)
	default:
		return events.None
	}
}

func translateKey(e *tcell.EventKey) events.Event {
	mods := translateMods(e.Modifiers())
	if e.Key() == tcell.KeyRune {
		return events.RuneKey(e.Rune(), mods)
	}
	// Enter, Tab and Backspace share codes with Ctrl-M, Ctrl-I and Ctrl-H,
	// so named keys are matched before the Ctrl-letter range.
	if code, ok := namedKeyFromTcell(e.Key()); ok {
		return events.Key(code, mods)
	}
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		letter := rune('a' + int(e.Key()-tcell.KeyCtrlA))
		return events.RuneKey(letter, mods|events.ModCtrl)
	}
	return events.None
}

func namedKeyFromTcell(k tcell.Key) (events.KeyCode, bool) {
	switch k {
	case tcell.KeyUp:
		return events.KeyUp, true
	case tcell.KeyDown:
		return events.KeyDown, true
	case tcell.KeyLeft:
		return events.KeyLeft, true
	case tcell.KeyRight:
		return events.KeyRight, true
	case tcell.KeyHome:
		return events.KeyHome, true
	case tcell.KeyEnd:
		return events.KeyEnd, true
	case tcell.KeyPgUp:
		return events.KeyPageUp, true
	case tcell.KeyPgDn:
		return events.KeyPageDown, true
	case tcell.KeyEnter:
		return events.KeyEnter, true
	case tcell.KeyEsc:
		return events.KeyEsc, true
	case tcell.KeyTab:
		return events.KeyTab, true
	case tcell.KeyBacktab:
		return events.KeyBackTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return events.KeyBackspace, true
	case tcell.KeyDelete:
		return events.KeyDelete, true
	case tcell.KeyInsert:
		return events.KeyInsert, true
	default:
		return 0, false
	}
}

func translateMods(m tcell.ModMask) events.Modifiers {
	var out events.Modifiers
	if m&tcell.ModShift != 0 {
		out |= events.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= events.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= events.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= events.ModMeta
	}
	return out
}

func translateMouse(e *tcell.EventMouse) events.Event {
	x, y := e.Position()
	kind := events.MouseNone
	switch {
	case e.Buttons()&tcell.WheelUp != 0:
		kind = events.MouseWheelUp
	case e.Buttons()&tcell.WheelDown != 0:
		kind = events.MouseWheelDown
	case e.Buttons()&tcell.ButtonMask(0xff) != 0:
		kind = events.MousePress
	default:
		kind = events.MouseRelease
	}
	return events.Event{
		Kind:      events.KindMouse,
		MouseKind: kind,
		Column:    x,
		Row:       y,
		Modifiers: translateMods(e.Modifiers()),
	}
}
