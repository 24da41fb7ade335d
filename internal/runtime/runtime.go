// Package runtime wires the four cooperating threads spec §4.3
// describes (Input, View, Search, Process) behind a common Threadable
// contract, with a shared status aggregator the top-level join() uses
// to decide success or first-error propagation.
package runtime

import (
	"sync"
	"time"
)

// Tunables named directly in spec §4.3.
const (
	MinimumTickRate     = 20 * time.Millisecond
	PauseTime           = 230 * time.Millisecond
	SearchInterruptTime = 10 * time.Millisecond
)

// Status is one thread's reported lifecycle state.
type Status int

const (
	StatusWaiting Status = iota
	StatusBusy
	StatusEnded
	StatusError
)

// Threadable is the contract every worker role implements: install
// launches its OS thread(s) via the given Spawner; pause/resume/end are
// idempotent signals (spec §4.3).
type Threadable interface {
	Install(sp *Spawner)
	Pause()
	Resume()
	End()
}

// Aggregator records every spawned thread's status, keyed by name, so
// Runtime.Join can tell success (all Ended) from the first Error.
type Aggregator struct {
	mu     sync.Mutex
	status map[string]Status
	errs   map[string]error
	cond   *sync.Cond
}

// NewAggregator returns an empty status table.
func NewAggregator() *Aggregator {
	a := &Aggregator{status: make(map[string]Status), errs: make(map[string]error)}
	a.cond = sync.NewCond(&a.mu)
	return a
}

// Set records name's status and wakes any Join waiter.
func (a *Aggregator) Set(name string, s Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status[name] = s
	a.cond.Broadcast()
}

// SetError records name as failed with err.
func (a *Aggregator) SetError(name string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status[name] = StatusError
	a.errs[name] = err
	a.cond.Broadcast()
}

// Snapshot returns a copy of the current per-thread status table.
func (a *Aggregator) Snapshot() map[string]Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]Status, len(a.status))
	for k, v := range a.status {
		out[k] = v
	}
	return out
}

// firstErrorLocked returns the name and error of any thread currently in
// StatusError, chosen deterministically (lexicographically first name)
// so repeated calls agree. Caller must hold a.mu.
func (a *Aggregator) firstErrorLocked() (string, error, bool) {
	var name string
	var err error
	found := false
	for n, s := range a.status {
		if s == StatusError && (!found || n < name) {
			name, err, found = n, a.errs[n], true
		}
	}
	return name, err, found
}

// allEndedLocked reports whether every named thread has reported Ended.
// Caller must hold a.mu.
func (a *Aggregator) allEndedLocked(names []string) bool {
	for _, n := range names {
		if a.status[n] != StatusEnded {
			return false
		}
	}
	return true
}

// Spawner records every thread a Threadable.Install launches into the
// shared Aggregator and runs it on its own goroutine.
type Spawner struct {
	agg   *Aggregator
	wg    sync.WaitGroup
	mu    sync.Mutex
	names []string
}

// NewSpawner builds a Spawner backed by agg.
func NewSpawner(agg *Aggregator) *Spawner { return &Spawner{agg: agg} }

// Go launches fn as a named OS thread (goroutine), marking it Waiting
// before fn runs and Ended (or Error, if fn returns a non-nil error)
// once it returns.
func (s *Spawner) Go(name string, fn func() error) {
	s.mu.Lock()
	s.names = append(s.names, name)
	s.mu.Unlock()

	s.agg.Set(name, StatusWaiting)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := fn(); err != nil {
			s.agg.SetError(name, err)
			return
		}
		s.agg.Set(name, StatusEnded)
	}()
}

// Names returns every thread name registered with Go so far.
func (s *Spawner) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Runtime owns the four Threadable workers and the shared Aggregator
// their Spawner reports into.
type Runtime struct {
	Agg     *Aggregator
	spawner *Spawner
	workers []Threadable
}

// New builds a Runtime ready to Install workers into.
func New() *Runtime {
	agg := NewAggregator()
	return &Runtime{Agg: agg, spawner: NewSpawner(agg)}
}

// Install launches w's OS thread(s) against the shared Spawner.
func (r *Runtime) Install(w Threadable) {
	r.workers = append(r.workers, w)
	w.Install(r.spawner)
}

// Pause propagates pause() to every installed worker.
func (r *Runtime) Pause() {
	for _, w := range r.workers {
		w.Pause()
	}
}

// Resume propagates resume() to every installed worker.
func (r *Runtime) Resume() {
	for _, w := range r.workers {
		w.Resume()
	}
}

// End propagates end() to every installed worker, causing every blocked
// wait to return immediately (spec §4.3).
func (r *Runtime) End() {
	for _, w := range r.workers {
		w.End()
	}
}

// Join blocks until every installed thread reports Ended, or returns the
// first reported Error immediately, calling End() on all workers first
// (spec §4.3: "join() returns Ok when all threads report Ended and Err
// on the first Error; it propagates end() to all on Err").
func (r *Runtime) Join() error {
	names := r.spawner.Names()

	r.Agg.mu.Lock()
	for {
		if _, err, found := r.Agg.firstErrorLocked(); found {
			r.Agg.mu.Unlock()
			r.End()
			return err
		}
		if r.Agg.allEndedLocked(names) {
			r.Agg.mu.Unlock()
			return nil
		}
		r.Agg.cond.Wait()
	}
}
