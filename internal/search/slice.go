package search

import "time"

// Interrupter is a time-sliced cancellation token passed by value into
// one search slice (spec GLOSSARY, spec §9 design note: "avoid a global
// atomic cancel flag, because it complicates unit tests of a single
// search call").
type Interrupter struct {
	deadline time.Time
}

// NewInterrupter returns an Interrupter whose slice budget expires after
// d (spec §4.3: SEARCH_INTERRUPT_TIME, 10ms).
func NewInterrupter(d time.Duration) Interrupter {
	return Interrupter{deadline: time.Now().Add(d)}
}

// Expired reports whether the slice's time budget has passed.
func (in Interrupter) Expired() bool {
	return !in.deadline.IsZero() && time.Now().After(in.deadline)
}

// Result reports what one SearchSlice call accomplished.
type Result int

const (
	// ResultNone: the slice ran to its deadline (or to completion of
	// this slice's remaining work) without finding any new match.
	ResultNone Result = iota
	// ResultUpdated: the slice found at least one new match before its
	// deadline or before exhausting the source; the caller should notify
	// the UI and issue another Continue.
	ResultUpdated
	// ResultComplete: the scan reached the end of the source. Matches
	// reflects the final result for this term/version.
	ResultComplete
)

// SearchSlice advances an in-progress (or freshly started) search by at
// most one Interrupter-bounded slice. Call it repeatedly (via Continue
// messages, spec §4.3) until it returns ResultComplete.
func (e *Engine) SearchSlice(src Searchable, term string, in Interrupter) Result {
	version := src.Version()
	if !e.scanning {
		if e.haveCache && version == e.cachedVersion && term == e.term && len(e.matches) > 0 {
			return ResultComplete
		}
		e.matches = e.matches[:0]
		e.scanIndex = 0
		e.scanning = true
	}

	matchedThisSlice := false
	for e.scanIndex < src.Len() {
		if in.Expired() {
			if matchedThisSlice {
				return ResultUpdated
			}
			return ResultNone
		}
		row := src.Row(e.scanIndex)
		if matchesRow(row, term) {
			e.matches = append(e.matches, e.scanIndex)
			matchedThisSlice = true
		}
		e.scanIndex++
	}

	e.scanning = false
	e.term = term
	e.cachedVersion = version
	e.haveCache = true
	e.selected = nil
	return ResultComplete
}
