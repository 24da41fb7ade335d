package runtime

import (
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
)

// CommandRunner executes an external command and reports its exit
// status. The real implementation shells out with the inherited
// environment and stdio (spec §6: "executed with the inherited
// environment and stdio"); tests substitute a fake.
type CommandRunner interface {
	Run(argv []string) error
}

// ExecRunner runs argv[0] via os/exec, inheriting stdio and environment.
type ExecRunner struct{}

func (ExecRunner) Run(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Process is the orchestrator thread: it drains the shared EventQueue,
// delegates each event to the Router, pushes a coalesced Render after
// every drained event, and executes ExternalCommands synchronously from
// this thread while the view refresh thread keeps the UI alive (spec
// §4.3 "Process thread").
type Process struct {
	Queue  *events.Queue
	Router *module.Router
	File   *todo.TodoFile
	View   *View
	Runner CommandRunner

	// OnDone, if set, runs once after the Router reports Done, before
	// this thread reports Ended, so the caller can tear the rest of the
	// runtime down (stop the terminal, end the other threads).
	OnDone func()

	paused int32
	ending int32
}

// NewProcess wires the orchestrator around an already-constructed
// Router, the shared queue it drains, and the View thread it renders
// into. Runner defaults to ExecRunner if nil.
func NewProcess(q *events.Queue, router *module.Router, tf *todo.TodoFile, view *View, runner CommandRunner) *Process {
	if runner == nil {
		runner = ExecRunner{}
	}
	p := &Process{Queue: q, Router: router, File: tf, View: view, Runner: runner}
	router.Spawn = p.spawn
	return p
}

func (p *Process) Install(sp *Spawner) {
	sp.Go("process", p.run)
}

func (p *Process) run() error {
	p.render()
	for {
		if atomic.LoadInt32(&p.ending) != 0 {
			return nil
		}
		for atomic.LoadInt32(&p.paused) != 0 && atomic.LoadInt32(&p.ending) == 0 {
			time.Sleep(PauseTime)
		}
		if atomic.LoadInt32(&p.ending) != 0 {
			return nil
		}

		ev, ok := p.Queue.Pop()
		if !ok {
			return nil
		}
		p.Router.Dispatch(ev, p.File)
		p.render()
		if p.Router.Done {
			if p.OnDone != nil {
				p.OnDone()
			}
			return nil
		}
	}
}

func (p *Process) render() {
	if p.View == nil {
		return
	}
	p.View.Render(p.Router.BuildViewData(p.File))
}

// spawn executes cmd synchronously on this thread and converts its exit
// status into a Standard event pushed back onto the shared queue (spec
// §4.3 "converts their exit status into a Standard(ExternalCommandSuccess
// |Error) event").
func (p *Process) spawn(cmd module.ExternalCommand) {
	err := p.Runner.Run(cmd.Argv)
	if err != nil {
		p.Queue.Push(events.StandardEvent(events.StandardExternalCommandError))
		return
	}
	p.Queue.Push(events.StandardEvent(events.StandardExternalCommandSuccess))
}

func (p *Process) Pause() { atomic.StoreInt32(&p.paused, 1) }

func (p *Process) Resume() { atomic.StoreInt32(&p.paused, 0) }

func (p *Process) End() {
	atomic.StoreInt32(&p.ending, 1)
	p.Queue.Close()
}
