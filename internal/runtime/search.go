package runtime

import (
	"sync/atomic"
	"time"

	"github.com/akavel/girt/internal/search"
)

// SearchActionKind names one message the Search thread's mailbox accepts
// (spec §4.3 "Action messages {SetSearchable(s), Start(term), Continue,
// Cancel, End}").
type SearchActionKind int

const (
	SearchSetSearchable SearchActionKind = iota
	SearchStart
	SearchContinue
	SearchCancel
	SearchEnd
)

// SearchAction is one message sent to the Search thread.
type SearchAction struct {
	Kind       SearchActionKind
	Searchable search.Searchable
	Term       string
}

// Search owns one search.Engine and drives it through time-sliced scans,
// one SearchSlice call per Continue, so a large todo list never blocks
// the rest of the runtime for more than SearchInterruptTime at a stretch
// (spec §4.3 "Search thread").
type Search struct {
	Engine *search.Engine

	// OnUpdate is invoked after each productive slice so the caller can
	// nudge the input thread with a SearchUpdate event.
	OnUpdate func()

	mailbox chan SearchAction

	src     search.Searchable
	term    string
	running bool

	paused int32
	ending int32
}

// NewSearch builds a Search thread around engine.
func NewSearch(engine *search.Engine, onUpdate func()) *Search {
	return &Search{Engine: engine, OnUpdate: onUpdate, mailbox: make(chan SearchAction, 8)}
}

// Send posts a into the mailbox.
func (s *Search) Send(a SearchAction) { s.mailbox <- a }

func (s *Search) Install(sp *Spawner) {
	sp.Go("search", s.run)
}

func (s *Search) run() error {
	for {
		a, ok := <-s.mailbox
		if !ok {
			return nil
		}
		switch a.Kind {
		case SearchSetSearchable:
			s.src = a.Searchable
		case SearchStart:
			if s.running && a.Term == s.term {
				continue // dedup redundant Start(term)
			}
			s.term = a.Term
			s.running = true
			s.step()
		case SearchContinue:
			if s.running {
				s.step()
			}
		case SearchCancel:
			s.Engine.Cancel()
			s.running = false
		case SearchEnd:
			return nil
		}

		if atomic.LoadInt32(&s.ending) != 0 {
			return nil
		}
		for atomic.LoadInt32(&s.paused) != 0 && atomic.LoadInt32(&s.ending) == 0 {
			time.Sleep(PauseTime)
		}
	}
}

// step runs one interrupted SearchSlice and schedules a Continue unless
// the scan completed.
func (s *Search) step() {
	if s.src == nil {
		s.running = false
		return
	}
	in := search.NewInterrupter(SearchInterruptTime)
	result := s.Engine.SearchSlice(s.src, s.term, in)
	switch result {
	case search.ResultComplete:
		s.running = false
	case search.ResultUpdated, search.ResultNone:
		if result == search.ResultUpdated && s.OnUpdate != nil {
			s.OnUpdate()
		}
		if s.running {
			// re-enqueue ourselves so the next mailbox pass resumes the
			// scan without needing an external Continue.
			select {
			case s.mailbox <- SearchAction{Kind: SearchContinue}:
			default:
			}
		}
	}
}

func (s *Search) Pause() { atomic.StoreInt32(&s.paused, 1) }

func (s *Search) Resume() { atomic.StoreInt32(&s.paused, 0) }

func (s *Search) End() {
	atomic.StoreInt32(&s.ending, 1)
	select {
	case s.mailbox <- SearchAction{Kind: SearchEnd}:
	default:
		close(s.mailbox)
	}
}
