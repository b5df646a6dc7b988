package check

import "sync"

// Counter counts assertion invocations. Every call to Recorder.Equal or
// Recorder.Within takes exactly one number from it, so after a run the
// count is the number of checks evaluated, failed or not.
type Counter struct {
	mu sync.Mutex
	n  int
}

// NewCounter creates a counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next records one more assertion and returns the new count.
func (c *Counter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

// Current returns the number of assertions recorded so far.
func (c *Counter) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Reset forgets every recorded assertion, so examples run again count
// from 1.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
