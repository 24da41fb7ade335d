package runtime

import (
	"sync"
	"sync/atomic"

	"github.com/akavel/girt/internal/events"
)

// EventReader is the abstract source of raw events the Input thread
// blocks on (spec §6 "EventReader trait returning one Event at a time").
// terminal.TUI satisfies this via its PollEvent method.
type EventReader interface {
	PollEvent() events.Event
}

// Input blocks on an EventReader and pushes raw events onto the shared
// EventQueue (spec §4.3 "Input thread"). Key-name to Meta translation is
// mode-scoped (done by the Router against the active module's own
// KeyBindings table, internal/module.Router.SetBindings) rather than
// done here, since the Input thread has no notion of which module is
// active and a single global table cannot resolve keys whose meaning
// differs by mode (e.g. "Up" moving the cursor in List vs. scrolling in
// ShowCommit, or "n"/"y" meaning search-next/nothing in List vs. Confirm's
// yes/no). The one exception is Ctrl-C, which this thread always
// translates into a StandardKill event regardless of mode (spec §7 "user
// cancellation").
//
// While paused, Input blocks on a condition variable before its next
// PollEvent; an event already being read when Pause is called is dropped
// rather than pushed.
type Input struct {
	Reader EventReader
	Queue  *events.Queue

	paused int32 // atomic bool

	mu     sync.Mutex
	cond   *sync.Cond
	ending bool
}

// NewInput builds an Input thread reading from r and pushing onto q.
func NewInput(r EventReader, q *events.Queue) *Input {
	in := &Input{Reader: r, Queue: q}
	in.cond = sync.NewCond(&in.mu)
	return in
}

func (in *Input) Install(sp *Spawner) {
	sp.Go("input", in.run)
}

func (in *Input) run() error {
	for {
		in.mu.Lock()
		for atomic.LoadInt32(&in.paused) != 0 && !in.ending {
			in.cond.Wait()
		}
		done := in.ending
		in.mu.Unlock()
		if done {
			return nil
		}

		ev := in.Reader.PollEvent()
		if ev.Kind == events.KindNone {
			continue
		}
		if atomic.LoadInt32(&in.paused) != 0 {
			continue // sink: dropped, not queued, while paused
		}
		if ev.Kind == events.KindKey && ev.KeyCode == events.KeyRune && ev.Rune == 'c' && ev.Modifiers&events.ModCtrl != 0 {
			ev = events.StandardEvent(events.StandardKill)
		}
		in.Queue.Push(ev)

		in.mu.Lock()
		done = in.ending
		in.mu.Unlock()
		if done {
			return nil
		}
	}
}

func (in *Input) Pause() {
	atomic.StoreInt32(&in.paused, 1)
}

func (in *Input) Resume() {
	atomic.StoreInt32(&in.paused, 0)
	in.mu.Lock()
	in.cond.Broadcast()
	in.mu.Unlock()
}

// interrupter is satisfied by terminal.TUI; End uses it to unblock a
// PollEvent call already in flight.
type interrupter interface {
	PostInterrupt()
}

func (in *Input) End() {
	in.mu.Lock()
	in.ending = true
	in.cond.Broadcast()
	in.mu.Unlock()
	if ir, ok := in.Reader.(interrupter); ok {
		ir.PostInterrupt()
	}
	in.Queue.Close()
}
