package runtime

import (
	"sync/atomic"
	"time"

	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/terminal"
	"github.com/akavel/girt/internal/view"
)

// ViewActionKind names one message the View thread's main loop accepts
// (spec §4.3 "ViewAction messages (Start/Stop/Render/Refresh/End)").
type ViewActionKind int

const (
	ViewStart ViewActionKind = iota
	ViewStop
	ViewEnd
)

// ViewAction is one control message sent to the View thread's main loop.
// Render messages travel over a separate single-slot channel so repeated
// Renders coalesce (spec §4.3: "at most one render per tick, applied to
// the latest RenderSlice").
type ViewAction struct {
	Kind ViewActionKind
}

// View is the two-cooperating-thread "view thread" role: "main" owns the
// terminal and coalesces Renders onto the latest RenderSlice; "refresh"
// injects a redraw roughly every MinimumTickRate unless paused (spec
// §4.3 "View thread").
type View struct {
	TUI   terminal.TUI
	Slice *render.Slice

	actions  chan ViewAction
	renders  chan *view.ViewData
	refresh  chan struct{}

	paused int32
	ending int32
}

// NewView builds a View thread drawing onto tui through slice.
func NewView(tui terminal.TUI, slice *render.Slice) *View {
	return &View{
		TUI:     tui,
		Slice:   slice,
		actions: make(chan ViewAction, 4),
		renders: make(chan *view.ViewData, 1),
		refresh: make(chan struct{}, 1),
	}
}

// Send posts a control message.
func (v *View) Send(a ViewAction) { v.actions <- a }

// Render submits data to be drawn on the next tick. A pending,
// not-yet-drawn render is replaced rather than queued, so bursts of
// module updates never back up the main thread (spec §4.3 "coalesces
// Renders").
func (v *View) Render(data *view.ViewData) {
	select {
	case v.renders <- data:
		return
	default:
	}
	select {
	case <-v.renders:
	default:
	}
	select {
	case v.renders <- data:
	default:
	}
}

func (v *View) Install(sp *Spawner) {
	sp.Go("view-main", v.runMain)
	sp.Go("view-refresh", v.runRefresh)
}

// runMain processes Start/Stop/End control messages and draws at most
// one coalesced Render, or a bare Refresh redraw of the last-synced
// Slice, per loop iteration.
func (v *View) runMain() error {
	renderer := render.NewRenderer(v.TUI)
	var haveDrawn bool
	for {
		select {
		case a := <-v.actions:
			switch a.Kind {
			case ViewStart:
				if err := v.TUI.Start(); err != nil {
					return err
				}
			case ViewStop:
				v.TUI.End()
			case ViewEnd:
				return nil
			}
		case data := <-v.renders:
			if data != nil {
				v.Slice.Sync(*data)
				renderer.Draw(v.Slice)
				haveDrawn = true
			}
		case <-v.refresh:
			if haveDrawn {
				renderer.Draw(v.Slice)
			}
		}
	}
}

// runRefresh injects a redraw tick every MinimumTickRate unless paused,
// backing off by PauseTime per wake while paused to avoid busy-looping
// (spec §4.3).
func (v *View) runRefresh() error {
	for atomic.LoadInt32(&v.ending) == 0 {
		if atomic.LoadInt32(&v.paused) != 0 {
			time.Sleep(PauseTime)
			continue
		}
		time.Sleep(MinimumTickRate)
		if atomic.LoadInt32(&v.ending) != 0 {
			return nil
		}
		select {
		case v.refresh <- struct{}{}:
		default:
		}
	}
	return nil
}

func (v *View) Pause() { atomic.StoreInt32(&v.paused, 1) }

func (v *View) Resume() { atomic.StoreInt32(&v.paused, 0) }

func (v *View) End() {
	atomic.StoreInt32(&v.ending, 1)
	select {
	case v.actions <- ViewAction{Kind: ViewEnd}:
	default:
	}
}
