package module

import (
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// CommandBuilder is implemented by modules (ExternalEditor) that build
// their ExternalCommand lazily from the todo file's path rather than
// supplying full Argv up front (spec §4.2 "ExternalEditor ... request an
// external command built from the configured editor template").
type CommandBuilder interface {
	BuildCommand(path string) ExternalCommand
}

// Router owns the active Module and applies ProcessResult fields in the
// fixed order spec §4.2 mandates: error, external_command, state change,
// exit_status. It also enforces the WindowSizeError global override.
type Router struct {
	modules  map[State]Module
	bindings map[State]*events.KeyBindings
	active   State
	errPrev  State

	width, height int
	sizeOK        bool

	// Spawn, when set, is invoked for any ProcessResult.ExternalCommand;
	// it must deliver a StandardExternalCommandSuccess/Error event back
	// onto the queue this Router is driven from (spec §4.3 "Process
	// thread ... executes external commands synchronously").
	Spawn func(ExternalCommand)

	Done       bool
	ExitStatus ExitStatus
}

// NewRouter wires the eight modules and starts in List.
func NewRouter(modules map[State]Module) *Router {
	return &Router{modules: modules, active: StateList, sizeOK: true, ExitStatus: ExitNone}
}

func (r *Router) Active() State { return r.active }

// SetBindings registers the KeyBindings table Dispatch uses to translate
// raw key events into Meta events while s is the active state. Key
// translation is mode-scoped, not global: the same physical key can mean
// different things in different states (List's "Up" moves the cursor,
// ShowCommit's "Up" scrolls), and some states (Confirm, ExternalEditor,
// Insert, Error) must see raw, untranslated key events and are left with
// no registered table so Dispatch passes events through unchanged.
func (r *Router) SetBindings(s State, kb *events.KeyBindings) {
	if r.bindings == nil {
		r.bindings = make(map[State]*events.KeyBindings)
	}
	r.bindings[s] = kb
}

// Dispatch feeds one event through the active module (or the global
// WindowSizeError/Kill overrides) and applies the resulting ProcessResult.
func (r *Router) Dispatch(ev events.Event, tf *todo.TodoFile) {
	if ev.Kind == events.KindStandard && ev.Standard == events.StandardKill {
		r.Done = true
		r.ExitStatus = ExitKill
		return
	}

	if ev.Kind == events.KindResize {
		r.width, r.height = ev.Width, ev.Height
		tooSmall := ev.Width < MinWidth || ev.Height < MinHeight
		if tooSmall && r.sizeOK {
			r.sizeOK = false
			r.errPrev = r.active
			r.switchState(StateWindowSizeError, tf)
		} else if !tooSmall && !r.sizeOK {
			r.sizeOK = true
			r.switchState(r.errPrev, tf)
		}
	}

	if ev.Kind == events.KindKey {
		if kb := r.bindings[r.active]; kb != nil {
			if meta, ok := kb.Translate(ev); ok {
				ev = events.MetaEvent(meta)
			}
		}
	}

	mod := r.modules[r.active]
	if mod == nil {
		return
	}
	result := mod.HandleEvent(ev, tf)
	r.apply(result, tf)
}

func (r *Router) apply(result ProcessResult, tf *todo.TodoFile) {
	if result.Err != nil {
		r.errPrev = r.active
		r.modules[StateError] = NewError(result.Err.Error())
		r.switchState(StateError, tf)
		return
	}
	if result.ExternalCommand != nil && r.Spawn != nil {
		r.Spawn(r.resolveExternalCommand(*result.ExternalCommand, tf))
	}
	if result.NextState != nil {
		r.switchState(*result.NextState, tf)
	}
	if result.ExitStatus != nil {
		r.Done = true
		r.ExitStatus = *result.ExitStatus
	}
}

// resolveExternalCommand fills in an empty-Argv ExternalCommand (the
// "re-invoke with current path" sentinel ExternalEditor returns for its
// re-edit/undo-and-re-edit options) by writing tf and asking the active
// module's CommandBuilder to render the editor template against its path
// (spec §4.2: "on activate: write the todo file, then request an
// external command").
func (r *Router) resolveExternalCommand(cmd ExternalCommand, tf *todo.TodoFile) ExternalCommand {
	if len(cmd.Argv) > 0 {
		return cmd
	}
	builder, ok := r.modules[r.active].(CommandBuilder)
	if !ok {
		return cmd
	}
	if err := tf.Write(); err != nil {
		return cmd
	}
	return builder.BuildCommand(tf.Path)
}

func (r *Router) switchState(next State, tf *todo.TodoFile) {
	prev := r.active
	r.active = next
	mod := r.modules[next]
	if mod == nil {
		return
	}
	result := mod.Activate(prev)
	if next == StateExternalEditor && result.ExternalCommand == nil {
		result.ExternalCommand = &ExternalCommand{}
	}
	r.apply(result, tf)
}

// Module exposes the module installed for s, for callers (the process
// thread) that need direct access, e.g. to pre-resolve an editor command
// before the first HandleEvent.
func (r *Router) Module(s State) Module { return r.modules[s] }

// BuildViewData asks the active module for its frame.
func (r *Router) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	mod := r.modules[r.active]
	if mod == nil {
		return &view.ViewData{Name: "empty"}
	}
	return mod.BuildViewData(tf)
}
