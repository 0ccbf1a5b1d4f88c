// Package clock provides the simulated timeline that stamps every
// generated entity. The store never calls time.Now directly; it takes a
// Source so tests can substitute a deterministic one.
package clock

import (
	"math/rand"
	"time"
)

// Source hands out creation timestamps. Successive calls must return
// non-decreasing values within one process.
type Source interface {
	Next() time.Time
}

// Epoch is where the simulated timeline starts.
var Epoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxStep bounds the random advance between consecutive timestamps.
const maxStep = 48 * time.Hour

// Timeline advances by a uniform random duration in [0, 48h) on every
// Next call. A step can be exactly zero, producing equal consecutive
// timestamps; consumers that order by date must sort stably.
type Timeline struct {
	rng  *rand.Rand
	last time.Time
}

// NewTimeline returns a timeline starting at Epoch, driven by the given
// seed. Equal seeds reproduce the same sequence.
func NewTimeline(seed int64) *Timeline {
	return &Timeline{rng: rand.New(rand.NewSource(seed)), last: Epoch}
}

func (t *Timeline) Next() time.Time {
	t.last = t.last.Add(time.Duration(t.rng.Int63n(int64(maxStep))))
	return t.last
}

// Stepped returns a Source that advances by exactly step on every call,
// starting at start+step. Tests use it to make timestamps predictable.
func Stepped(start time.Time, step time.Duration) Source {
	return &stepped{last: start, step: step}
}

type stepped struct {
	last time.Time
	step time.Duration
}

func (s *stepped) Next() time.Time {
	s.last = s.last.Add(s.step)
	return s.last
}
