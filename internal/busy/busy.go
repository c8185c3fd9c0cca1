// Package busy tracks how many network calls are in flight so the UI can
// show a single shared activity indicator instead of per-screen spinners.
package busy

import (
	"sync"
)

// Counter is a reference-counted busy flag shared by all in-flight requests.
// The indicator is visible while at least one request is outstanding.
type Counter struct {
	mu     sync.Mutex
	count  int
	onZero func()
}

// NewCounter creates a new Counter
func NewCounter() *Counter {
	return &Counter{}
}

// OnIdle registers a callback invoked each time the count returns to zero.
// Passing nil clears the callback.
func (c *Counter) OnIdle(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onZero = fn
}

// Add records the dispatch of one request
func (c *Counter) Add() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

// Done records the completion of one request, success or failure.
// The count never drops below zero; a spurious Done is ignored.
func (c *Counter) Done() {
	c.mu.Lock()
	var fn func()
	if c.count > 0 {
		c.count--
		if c.count == 0 {
			fn = c.onZero
		}
	}
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Count returns the number of outstanding requests
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Visible reports whether the busy indicator should be shown
func (c *Counter) Visible() bool {
	return c.Count() > 0
}
