// Package module implements the Module state machine (spec §4.2): List,
// ConfirmAbort, ConfirmRebase, ExternalEditor, ShowCommit, Insert, Error,
// and WindowSizeError, plus the ProcessResult/router contract every
// module is driven through.
package module

import (
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// State names one of the eight module states.
type State int

const (
	StateList State = iota
	StateConfirmAbort
	StateConfirmRebase
	StateExternalEditor
	StateShowCommit
	StateInsert
	StateError
	StateWindowSizeError
)

// ExitStatus mirrors spec §6's seven documented process exit codes.
type ExitStatus int

const (
	ExitNone ExitStatus = iota - 1
	ExitGood
	ExitAbort
	ExitConfigError
	ExitFileReadError
	ExitFileWriteError
	ExitStateError
	ExitKill
)

// ExternalCommand describes a command the router must spawn and await,
// delivering its outcome back as a Standard event (spec §4.2 ProcessResult
// field "external_command").
type ExternalCommand struct {
	Argv []string
}

// ProcessResult is the record every Module operation returns; the router
// applies its optional fields in a fixed order: error, external_command,
// next_state, exit_status (spec §4.2).
type ProcessResult struct {
	EventEcho       *events.Event
	NextState       *State
	ExitStatus      *ExitStatus
	ExternalCommand *ExternalCommand
	Err             error
}

// Module is the three-operation contract every state implements.
type Module interface {
	Activate(prev State) ProcessResult
	HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult
	BuildViewData(tf *todo.TodoFile) *view.ViewData
}

func noResult() ProcessResult { return ProcessResult{} }

func errResult(err error) ProcessResult { return ProcessResult{Err: err} }

func stateResult(s State) ProcessResult { return ProcessResult{NextState: &s} }

func exitResult(s ExitStatus) ProcessResult { return ProcessResult{ExitStatus: &s} }
