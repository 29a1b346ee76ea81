package engine

import (
	"sync/atomic"
	"time"
)

// checkpointNodes is how often Clock.Tick polls the wall clock, in
// visited nodes. Checking every node would make time.Now dominate the
// search; checking too rarely risks overshooting the deadline.
const checkpointNodes = 1024

// Clock tracks a wall-clock search deadline and an external stop request,
// shared across root-parallel search workers. There is no per-move or
// per-side time allocation; callers hand Search a single deadline.
type Clock struct {
	deadline time.Time
	stopped  atomic.Bool
	nodes    atomic.Uint64
}

// NewClock returns a Clock that expires at deadline.
func NewClock(deadline time.Time) *Clock {
	return &Clock{deadline: deadline}
}

// Stop requests that any in-progress search using this clock return as
// soon as it next checks in.
func (c *Clock) Stop() {
	c.stopped.Store(true)
}

// Tick records that a node was visited and reports whether the search
// should stop: either because Stop was called, or because the deadline
// has passed. The wall clock is only consulted every checkpointNodes
// calls to keep time.Now off the hot path.
func (c *Clock) Tick() bool {
	if c.stopped.Load() {
		return true
	}
	n := c.nodes.Add(1)
	if n%checkpointNodes != 0 {
		return false
	}
	if time.Now().After(c.deadline) {
		c.stopped.Store(true)
		return true
	}
	return false
}

// Nodes returns the number of Tick calls counted so far. Calls made after
// the clock has stopped return early and are not counted.
func (c *Clock) Nodes() uint64 {
	return c.nodes.Load()
}
