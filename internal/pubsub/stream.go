// Package pubsub implements the synchronous change streams the store
// publishes on. Delivery happens inline on the publisher's goroutine, in
// subscribe order, with no queuing: a slow subscriber delays the
// publisher. The model is single-threaded by design, so streams carry no
// locking.
package pubsub

// Stream is a multi-subscriber broadcast channel for values of type T.
// The zero value is ready to use.
type Stream[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscription identifies one subscriber on a stream. Collaborators must
// Cancel when they stop observing; a forgotten subscription keeps
// receiving updates until the stream itself is dropped.
type Subscription struct {
	cancel func()
}

// Cancel removes the subscriber. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Subscribe registers fn to be called on every subsequent Publish.
func (s *Stream[T]) Subscribe(fn func(T)) *Subscription {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.remove(id) }}
}

func (s *Stream[T]) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers v to every current subscriber, synchronously, in
// subscribe order. Subscribers added during delivery do not receive v.
func (s *Stream[T]) Publish(v T) {
	snapshot := append([]subscriber[T](nil), s.subs...)
	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// Len reports the number of active subscribers.
func (s *Stream[T]) Len() int { return len(s.subs) }
