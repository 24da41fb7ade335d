package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
)

func newTodoFile(t *testing.T, contents string) *todo.TodoFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rebase-todo")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	tf := todo.NewTodoFile(path, '#', 10)
	if err := tf.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tf
}

func newFullRouter() *Router {
	kb := events.DefaultKeyBindings()
	confirmKB := events.ConfirmKeyBindings()
	r := NewRouter(map[State]Module{
		StateList:           NewList(kb, false),
		StateConfirmAbort:   NewConfirm(confirmKB, ConfirmAbortKind),
		StateConfirmRebase:  NewConfirm(confirmKB, ConfirmRebaseKind),
		StateInsert:         NewInsert(),
		StateError:          NewError(""),
		StateWindowSizeError: NewWindowSizeError(),
	})
	r.SetBindings(StateList, kb)
	return r
}

// S1: reword and exit. Keys: r down r W.
func TestRouter_ScenarioS1_RewordAndExit(t *testing.T) {
	tf := newTodoFile(t, "pick aaaaaaaa msg1\npick bbbbbbbb msg2\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaActionReword), tf)
	r.Dispatch(events.MetaEvent(events.MetaMoveCursorDown), tf)
	r.Dispatch(events.MetaEvent(events.MetaActionReword), tf)
	r.Dispatch(events.MetaEvent(events.MetaForceRebase), tf)

	if !r.Done || r.ExitStatus != ExitGood {
		t.Fatalf("Done=%v ExitStatus=%v, want Done exit Good", r.Done, r.ExitStatus)
	}
	if tf.Lines[0].Action != todo.Reword || tf.Lines[1].Action != todo.Reword {
		t.Errorf("actions = %v, %v; want both Reword", tf.Lines[0].Action, tf.Lines[1].Action)
	}
}

// S2: visual-mode drop over five pick lines. Keys: down v down down d W.
func TestRouter_ScenarioS2_VisualModeDrop(t *testing.T) {
	tf := newTodoFile(t, "pick a1 c1\npick a2 c2\npick a3 c3\npick a4 c4\npick a5 c5\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaMoveCursorDown), tf)
	r.Dispatch(events.MetaEvent(events.MetaToggleVisualMode), tf)
	r.Dispatch(events.MetaEvent(events.MetaMoveCursorDown), tf)
	r.Dispatch(events.MetaEvent(events.MetaMoveCursorDown), tf)
	r.Dispatch(events.MetaEvent(events.MetaActionDrop), tf)
	r.Dispatch(events.MetaEvent(events.MetaForceRebase), tf)

	want := []todo.Action{todo.Pick, todo.Drop, todo.Drop, todo.Drop, todo.Pick}
	for i, w := range want {
		if tf.Lines[i].Action != w {
			t.Errorf("line %d action = %v, want %v", i, tf.Lines[i].Action, w)
		}
	}
}

// S3: undo/redo round trip. From fresh "pick a c1": d (drop), Ctrl-z
// (undo) -> pick a c1 on exit; then redo Ctrl-y -> drop a c1 on exit.
func TestRouter_ScenarioS3_UndoRedoRoundTrip(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaActionDrop), tf)
	r.Dispatch(events.MetaEvent(events.MetaUndo), tf)
	if tf.Lines[0].Action != todo.Pick {
		t.Fatalf("after undo, action = %v, want Pick", tf.Lines[0].Action)
	}

	r.Dispatch(events.MetaEvent(events.MetaRedo), tf)
	if tf.Lines[0].Action != todo.Drop {
		t.Fatalf("after redo, action = %v, want Drop", tf.Lines[0].Action)
	}
}

// S6: resize below the minimum enters WindowSizeError; a subsequent
// resize that restores sufficient size returns to the prior state.
func TestRouter_ScenarioS6_WindowTooSmall(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\n")
	r := newFullRouter()

	r.Dispatch(events.Resize(10, 4), tf)
	if r.Active() != StateWindowSizeError {
		t.Fatalf("active state = %v, want StateWindowSizeError", r.Active())
	}

	// other input should have no effect on the todo list while too small.
	r.Dispatch(events.MetaEvent(events.MetaActionDrop), tf)
	if tf.Lines[0].Action != todo.Pick {
		t.Errorf("action changed while window too small: %v", tf.Lines[0].Action)
	}

	r.Dispatch(events.Resize(80, 24), tf)
	if r.Active() != StateList {
		t.Fatalf("active state after resize-up = %v, want StateList", r.Active())
	}
}

func TestRouter_ConfirmAbort_YesClearsLinesAndExits(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\npick b c2\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaAbort), tf)
	if r.Active() != StateConfirmAbort {
		t.Fatalf("active = %v, want StateConfirmAbort", r.Active())
	}
	r.Dispatch(events.RuneKey('y', events.ModNone), tf)
	if !r.Done || r.ExitStatus != ExitGood {
		t.Fatalf("Done=%v ExitStatus=%v, want Done exit Good", r.Done, r.ExitStatus)
	}
	if len(tf.Lines) != 0 {
		t.Errorf("lines not cleared: %v", tf.Lines)
	}
}

func TestRouter_ConfirmAbort_NoReturnsToList(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaAbort), tf)
	r.Dispatch(events.RuneKey('n', events.ModNone), tf)
	if r.Active() != StateList {
		t.Fatalf("active = %v, want StateList", r.Active())
	}
	if len(tf.Lines) != 1 {
		t.Errorf("lines changed: %v", tf.Lines)
	}
}

// Translation is mode-scoped: raw "Down" moves the cursor while List is
// active (its own table), via Dispatch's own translate step rather than
// a global one, so it cannot be shadowed by an unrelated meaning bound to
// the same physical key in another module's table.
func TestRouter_Dispatch_TranslatesRawKeysUsingActiveStateTable(t *testing.T) {
	tf := newTodoFile(t, "pick a1 c1\npick a2 c2\n")
	r := newFullRouter()

	r.Dispatch(events.Key(events.KeyDown, events.ModNone), tf)
	if tf.SelectedIndex != 1 {
		t.Fatalf("SelectedIndex = %d, want 1 after raw Down", tf.SelectedIndex)
	}
}

// Confirm never receives a pre-translated event: with no table registered
// for StateConfirmAbort, raw "n"/"y" pass through unchanged so Confirm's
// own MatchesSingleASCII lookup (against its dedicated ConfirmKeyBindings
// table) decides, instead of colliding with List's unrelated "n" binding
// (search-next).
func TestRouter_ConfirmAbort_RawKeysNotShadowedByListTable(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaAbort), tf)
	r.Dispatch(events.RuneKey('y', events.ModNone), tf)
	if !r.Done || r.ExitStatus != ExitGood {
		t.Fatalf("Done=%v ExitStatus=%v, want Done exit Good", r.Done, r.ExitStatus)
	}
}

// Ctrl-C is translated to StandardKill by the Input thread regardless of
// mode; Dispatch must honor it globally, exiting immediately even mid
// visual-mode selection (spec §7).
func TestRouter_Dispatch_StandardKillExitsImmediately(t *testing.T) {
	tf := newTodoFile(t, "pick a c1\n")
	r := newFullRouter()

	r.Dispatch(events.MetaEvent(events.MetaToggleVisualMode), tf)
	r.Dispatch(events.StandardEvent(events.StandardKill), tf)

	if !r.Done || r.ExitStatus != ExitKill {
		t.Fatalf("Done=%v ExitStatus=%v, want Done exit Kill", r.Done, r.ExitStatus)
	}
}
