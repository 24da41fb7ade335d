package runtime

import (
	"testing"
	"time"

	"github.com/akavel/girt/internal/events"
)

// fakeReader feeds queued events to PollEvent, blocking when empty.
// PostInterrupt unblocks a pending call, matching terminal.TUI's
// contract closely enough for the Input thread's End() path.
type fakeReader struct {
	evs chan events.Event
}

func newFakeReader() *fakeReader { return &fakeReader{evs: make(chan events.Event, 8)} }

func (f *fakeReader) PollEvent() events.Event {
	return <-f.evs
}

func (f *fakeReader) PostInterrupt() {
	select {
	case f.evs <- events.None:
	default:
	}
}

// Input pushes raw key events through untranslated: translation is
// mode-scoped and happens in the Router against the active module's own
// KeyBindings table, not here.
func TestInput_PushesRawKeyEventsUntranslated(t *testing.T) {
	reader := newFakeReader()
	q := events.NewQueue(0)
	in := NewInput(reader, q)

	agg := NewAggregator()
	sp := NewSpawner(agg)
	in.Install(sp)

	reader.evs <- events.RuneKey('r', events.ModNone)

	ev, ok := q.Pop()
	if !ok || ev.Kind != events.KindKey || ev.Rune != 'r' {
		t.Fatalf("Pop() = %+v, %v; want raw KindKey 'r'", ev, ok)
	}

	in.End()
	sp.wg.Wait()
}

// Ctrl-C always becomes a StandardKill event, regardless of mode (spec §7
// "user cancellation"); this is the one translation Input performs
// itself.
func TestInput_CtrlCBecomesStandardKill(t *testing.T) {
	reader := newFakeReader()
	q := events.NewQueue(0)
	in := NewInput(reader, q)

	agg := NewAggregator()
	sp := NewSpawner(agg)
	in.Install(sp)

	reader.evs <- events.RuneKey('c', events.ModCtrl)

	ev, ok := q.Pop()
	if !ok || ev.Kind != events.KindStandard || ev.Standard != events.StandardKill {
		t.Fatalf("Pop() = %+v, %v; want StandardKill", ev, ok)
	}

	in.End()
	sp.wg.Wait()
}

func TestInput_PauseDropsEvents(t *testing.T) {
	reader := newFakeReader()
	q := events.NewQueue(0)
	in := NewInput(reader, q)

	agg := NewAggregator()
	sp := NewSpawner(agg)
	in.Install(sp)

	reader.evs <- events.RuneKey('p', events.ModNone)
	if _, ok := q.Pop(); !ok {
		t.Fatal("expected first event to be queued")
	}

	in.Pause()
	time.Sleep(20 * time.Millisecond) // let the thread reach its blocking PollEvent call
	reader.evs <- events.RuneKey('d', events.ModNone)
	time.Sleep(20 * time.Millisecond)
	if _, ok := q.TryPop(); ok {
		t.Fatal("event queued while paused, want dropped")
	}

	in.Resume()
	reader.evs <- events.RuneKey('w', events.ModNone)
	ev, ok := q.Pop()
	if !ok || ev.Kind != events.KindKey || ev.Rune != 'w' {
		t.Fatalf("Pop() after resume = %+v, %v; want raw KindKey 'w'", ev, ok)
	}

	in.End()
	sp.wg.Wait()
}
