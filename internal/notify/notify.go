// Package notify is the single-slot notification channel used to report the
// outcome of asynchronous operations. Exactly one notification is visible at
// a time; publishing replaces the current one and restarts the dismissal
// window.
package notify

import (
	"sync"
	"time"
)

// DefaultDismissAfter is the auto-dismiss window measured from publication
const DefaultDismissAfter = 3 * time.Second

// Severity classifies a notification
type Severity int

const (
	// SeverityInfo is a neutral informational message
	SeverityInfo Severity = iota
	// SeveritySuccess reports a completed operation
	SeveritySuccess
	// SeverityError reports a failed operation
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single user-facing message
type Notification struct {
	Message  string
	Severity Severity
	Visible  bool
}

// Center owns the process-wide notification slot
type Center struct {
	mu           sync.Mutex
	current      Notification
	timer        *time.Timer
	gen          uint64
	dismissAfter time.Duration
	onChange     func()
}

// NewCenter creates a Center with the default 3 second dismissal window
func NewCenter() *Center {
	return NewCenterWithWindow(DefaultDismissAfter)
}

// NewCenterWithWindow creates a Center with a custom dismissal window
func NewCenterWithWindow(window time.Duration) *Center {
	return &Center{dismissAfter: window}
}

// OnChange registers a callback invoked after every publish or dismissal so
// the UI can repaint. Passing nil clears the callback.
func (c *Center) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Publish replaces any visible notification and restarts the dismissal timer
func (c *Center) Publish(message string, severity Severity) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.current = Notification{Message: message, Severity: severity, Visible: true}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.dismissAfter, func() {
		c.expire(gen)
	})
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Success publishes a success notification
func (c *Center) Success(message string) {
	c.Publish(message, SeveritySuccess)
}

// Error publishes an error notification
func (c *Center) Error(message string) {
	c.Publish(message, SeverityError)
}

// Info publishes an informational notification
func (c *Center) Info(message string) {
	c.Publish(message, SeverityInfo)
}

// Dismiss hides the current notification immediately
func (c *Center) Dismiss() {
	c.mu.Lock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current.Visible = false
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Current returns the live notification; Visible is false when nothing is shown
func (c *Center) Current() Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// expire hides the notification only if no later publish superseded it
func (c *Center) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.current.Visible = false
	c.timer = nil
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}
