package pubsub

import "testing"

func TestPublishDeliversInSubscribeOrder(t *testing.T) {
	var s Stream[int]
	var order []string
	s.Subscribe(func(v int) { order = append(order, "a") })
	s.Subscribe(func(v int) { order = append(order, "b") })
	s.Subscribe(func(v int) { order = append(order, "c") })

	s.Publish(1)

	if got := len(order); got != 3 {
		t.Fatalf("delivered to %d subscribers, want 3", got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if order[i] != want {
			t.Fatalf("delivery order %v, want [a b c]", order)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	var s Stream[string]
	var got []string
	sub := s.Subscribe(func(v string) { got = append(got, v) })

	s.Publish("one")
	sub.Cancel()
	s.Publish("two")
	sub.Cancel() // repeated cancel is a no-op

	if len(got) != 1 || got[0] != "one" {
		t.Fatalf("received %v, want [one]", got)
	}
	if s.Len() != 0 {
		t.Fatalf("subscriber count = %d after cancel", s.Len())
	}
}

func TestSubscribeDuringDelivery(t *testing.T) {
	var s Stream[int]
	var lateCalls int
	s.Subscribe(func(v int) {
		s.Subscribe(func(int) { lateCalls++ })
	})

	s.Publish(1)
	if lateCalls != 0 {
		t.Fatal("subscriber added mid-delivery received the triggering publish")
	}

	s.Publish(2)
	if lateCalls != 1 {
		t.Fatalf("late subscriber calls = %d, want 1", lateCalls)
	}
}

func TestPublishSynchronous(t *testing.T) {
	var s Stream[int]
	seen := 0
	s.Subscribe(func(v int) { seen = v })
	s.Publish(7)
	// Delivery completes before Publish returns.
	if seen != 7 {
		t.Fatalf("seen = %d, want 7", seen)
	}
}
