package debounce

import (
	"testing"
	"time"
)

func TestScheduleFiresAfterDelay(t *testing.T) {
	d := New(10 * time.Millisecond)
	fired := make(chan struct{})
	d.Schedule(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("action never fired")
	}
}

func TestScheduleSupersedesPending(t *testing.T) {
	d := New(30 * time.Millisecond)
	got := make(chan string, 2)
	d.Schedule(func() { got <- "first" })
	time.Sleep(5 * time.Millisecond)
	d.Schedule(func() { got <- "second" })

	select {
	case v := <-got:
		if v != "second" {
			t.Fatalf("fired %q, want the superseding action", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no action fired")
	}

	select {
	case v := <-got:
		t.Fatalf("superseded action %q fired anyway", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCancelDropsPending(t *testing.T) {
	d := New(20 * time.Millisecond)
	fired := make(chan struct{}, 1)
	d.Schedule(func() { fired <- struct{}{} })
	d.Cancel()
	d.Cancel() // repeat is a no-op

	select {
	case <-fired:
		t.Fatal("cancelled action fired")
	case <-time.After(100 * time.Millisecond):
	}
}
