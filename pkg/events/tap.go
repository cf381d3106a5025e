package events

import (
	"time"

	"go.uber.org/zap"
)

// Handler receives every event delivered by a tap, synchronously on the tap thread.
type Handler func(Event) Verdict

// Handle is an armed tap attached to the calling thread's run loop.
type Handle interface {
	// RunFor pumps the platform run loop for at most d, dispatching events to the handler.
	RunFor(d time.Duration) error
	// Close disarms the tap and detaches it from the run loop.
	Close() error
}

// Adapter opens event taps.
type Adapter interface {
	// Open creates a tap for the kinds in mask. Failures caused by missing
	// Accessibility trust wrap ErrAccessibilityPermission.
	Open(mask Mask, handler Handler) (Handle, error)
}

// AdapterFunc adapts a function literal to the Adapter interface.
type AdapterFunc func(mask Mask, handler Handler) (Handle, error)

// Open calls the underlying function.
func (f AdapterFunc) Open(mask Mask, handler Handler) (Handle, error) {
	return f(mask, handler)
}

// Options controls adapter construction.
type Options struct {
	Logger *zap.Logger
}

// NewAdapter returns the platform adapter: the Quartz event tap on darwin, a stub elsewhere.
func NewAdapter(opts Options) Adapter {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return defaultAdapter(logger)
}
