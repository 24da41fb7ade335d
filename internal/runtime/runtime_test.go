package runtime

import (
	"errors"
	"testing"
	"time"
)

func TestRuntime_Join_AllEndedReturnsNil(t *testing.T) {
	r := New()
	r.spawner.Go("a", func() error { return nil })
	r.spawner.Go("b", func() error { return nil })

	done := make(chan error, 1)
	go func() { done <- r.Join() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Join() = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Join did not return")
	}
}

func TestRuntime_Join_PropagatesFirstError(t *testing.T) {
	r := New()
	boom := errors.New("boom")
	r.spawner.Go("ok", func() error {
		time.Sleep(10 * time.Millisecond)
		return nil
	})
	r.spawner.Go("broken", func() error { return boom })

	done := make(chan error, 1)
	go func() { done <- r.Join() }()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("Join() = %v, want %v", err, boom)
		}
	case <-time.After(time.Second):
		t.Fatal("Join did not return")
	}
}

func TestAggregator_SnapshotReflectsStatus(t *testing.T) {
	agg := NewAggregator()
	agg.Set("input", StatusBusy)
	agg.Set("view-main", StatusWaiting)

	snap := agg.Snapshot()
	if snap["input"] != StatusBusy || snap["view-main"] != StatusWaiting {
		t.Fatalf("snapshot = %+v", snap)
	}
}
