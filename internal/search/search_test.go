package search

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akavel/girt/internal/todo"
)

func newFile(t *testing.T, text string) *todo.TodoFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rebase-todo")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	tf := todo.NewTodoFile(path, '#', 10)
	if err := tf.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tf
}

// scenario S4: pick aaaaaaaa x1 / pick bbbbbbbb x2 / pick cccccccc x3,
// "/x" then Enter selects row 0 (the first match at or after the cursor
// row 0), then n n n selects rows 1, 2, 0; 3 total matches. Enter and
// each n are one Next call.
func TestEngine_Next_ScenarioS4(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\npick bbbbbbbb x2\npick cccccccc x3\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	e.SetHint(0)

	want := []int{0, 1, 2, 0}
	for i, w := range want {
		row, ok := e.Next(src, "x")
		if !ok {
			t.Fatalf("Next[%d]: no match found", i)
		}
		if row != w {
			t.Errorf("Next[%d] = %d, want %d", i, row, w)
		}
	}
	if got := len(e.Matches()); got != 3 {
		t.Errorf("Matches() len = %d, want 3", got)
	}
}

// property #4: Next called M times on a list with M matches cycles with
// period M, and Previous undoes Next.
func TestEngine_Next_CyclesWithPeriodM(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\npick bbbbbbbb x2\npick cccccccc x3\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	first, ok := e.Next(src, "x")
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 2; i++ {
		if _, ok := e.Next(src, "x"); !ok {
			t.Fatal("expected a match")
		}
	}
	// three matches; one more Next should be back at first.
	got, ok := e.Next(src, "x")
	if !ok || got != first {
		t.Errorf("after M Next calls, got row %d, want back at %d", got, first)
	}
}

func TestEngine_Previous_UndoesNext(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\npick bbbbbbbb x2\npick cccccccc x3\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	start, ok := e.Next(src, "x")
	if !ok {
		t.Fatal("expected a match")
	}
	if _, ok := e.Next(src, "x"); !ok {
		t.Fatal("expected a match")
	}
	back, ok := e.Previous(src, "x")
	if !ok || back != start {
		t.Errorf("Previous after Next did not return to %d, got %d", start, back)
	}
}

func TestEngine_Search_NoMatches(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	if e.Search(src, "nope") {
		t.Error("expected no matches")
	}
	if _, ok := e.Next(src, "nope"); ok {
		t.Error("Next should report no match when none exist")
	}
}

func TestEngine_Search_BreakAndNoopNeverMatch(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\nbreak\nnoop\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	e.Search(src, "x")
	for _, row := range e.Matches() {
		if tf.Lines[row].Action == todo.Break || tf.Lines[row].Action == todo.Noop {
			t.Errorf("row %d matched but action %v is never searchable", row, tf.Lines[row].Action)
		}
	}
}

func TestEngine_Invalidate_ForcesRebuildOnNextSearch(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\npick bbbbbbbb x2\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	e.Search(src, "x")
	if len(e.Matches()) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(e.Matches()))
	}

	tf.RemoveLines(1, 1)
	e.Invalidate()
	e.Search(src, "x")
	if len(e.Matches()) != 1 {
		t.Errorf("after invalidate+remove, expected 1 match, got %d", len(e.Matches()))
	}
}

func TestEngine_SearchSlice_CompletesAcrossMultipleSlices(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\npick bbbbbbbb x2\npick cccccccc x3\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	// An already-expired interrupter makes no progress at all: Expired()
	// is checked at the top of each loop iteration before any work, so
	// the slice returns ResultNone at once and the loop below finishes
	// the scan with a generous deadline.
	past := Interrupter{deadline: time.Now().Add(-time.Hour)}

	var result Result
	guard := 0
	for result != ResultComplete {
		result = e.SearchSlice(src, "x", past)
		guard++
		if guard > 100 {
			t.Fatal("SearchSlice did not complete")
		}
		if result == ResultNone {
			// force progress by giving a generous deadline once stuck
			result = e.SearchSlice(src, "x", NewInterrupter(time.Second))
		}
	}
	if len(e.matches) != 3 {
		t.Errorf("expected 3 matches after slice-completed scan, got %d", len(e.matches))
	}
}

func TestEngine_SearchSlice_CachedCompleteIsImmediate(t *testing.T) {
	tf := newFile(t, "pick aaaaaaaa x1\n")
	src := TodoSearchable{File: tf}

	e := NewEngine()
	e.Search(src, "x")

	result := e.SearchSlice(src, "x", NewInterrupter(0))
	if result != ResultComplete {
		t.Errorf("expected cached search to report Complete immediately, got %v", result)
	}
}
