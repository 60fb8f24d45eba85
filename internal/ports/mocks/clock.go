package mocks

import (
	"context"
	"sync"
	"time"
)

// FakeClock records sleeps instead of blocking and advances its own time.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *FakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// SequenceRandom returns its values in order, wrapping around, each clamped to n.
type SequenceRandom struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequenceRandom(values ...int) *SequenceRandom {
	return &SequenceRandom{values: values}
}

func (r *SequenceRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 || n <= 0 {
		return 0
	}
	value := r.values[r.next%len(r.values)]
	r.next++
	if value >= n {
		return n - 1
	}
	if value < 0 {
		return 0
	}
	return value
}
