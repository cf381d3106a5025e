package capture

import (
	"sync"

	"go.uber.org/atomic"
)

// Controller is the stop signal shared by an event formatter and the wait loop.
// It trips at most once; later calls to Kill are ignored.
type Controller struct {
	stopped atomic.Bool
	reason  atomic.String
	once    sync.Once
	done    chan struct{}
}

// NewController constructs a controller in the running state.
func NewController() *Controller {
	return &Controller{done: make(chan struct{})}
}

// Kill requests the wait loop to stop after the current slice.
func (c *Controller) Kill(reason string) {
	c.once.Do(func() {
		// reason is visible before Stopped reports true.
		c.reason.Store(reason)
		c.stopped.Store(true)
		close(c.done)
	})
}

// Stopped reports whether Kill has been called.
func (c *Controller) Stopped() bool {
	return c.stopped.Load()
}

// Reason returns the reason passed to the first Kill call.
func (c *Controller) Reason() string {
	return c.reason.Load()
}

// Done is closed once the controller is killed.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// State reports the textual state for diagnostics.
func (c *Controller) State() string {
	if c.Stopped() {
		return "stopping"
	}
	return "running"
}
