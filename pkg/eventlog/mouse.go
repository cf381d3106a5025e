package eventlog

import (
	"io"

	"github.com/openctrl/receiver/pkg/events"
	"go.uber.org/zap"
)

// mouseLabelWidth is the width of the longest mouse label, OtherMouseDragged.
const mouseLabelWidth = 17

// MouseOptions configures a MouseLogger.
type MouseOptions struct {
	Output   io.Writer
	Suppress bool
	Logger   *zap.Logger
}

// MouseLogger formats pointer and scroll events. It has no kill switch; the mouse
// tool stops on an interrupt only.
type MouseLogger struct {
	printer
}

// NewMouseLogger constructs a mouse formatter. Output defaults to stdout.
func NewMouseLogger(opts MouseOptions) *MouseLogger {
	return &MouseLogger{printer: newPrinter(opts.Output, opts.Suppress, opts.Logger)}
}

// Handle formats one event and returns whether it passes through.
func (l *MouseLogger) Handle(e events.Event) events.Verdict {
	switch e.Kind {
	case events.KindTapDisabledByTimeout:
		l.log.Debug("tap timeout passed through")
	case events.KindMouseMoved,
		events.KindLeftMouseDragged, events.KindRightMouseDragged, events.KindOtherMouseDragged,
		events.KindLeftMouseDown, events.KindLeftMouseUp,
		events.KindRightMouseDown, events.KindRightMouseUp,
		events.KindOtherMouseDown, events.KindOtherMouseUp:
		l.printf("[Mouse][%-*s] x=%d y=%d\n", mouseLabelWidth, e.Kind, int64(e.X), int64(e.Y))
	case events.KindScrollWheel:
		l.printf("[Mouse][%-*s] dy=%d dx=%d\n", mouseLabelWidth, e.Kind, e.ScrollDY, e.ScrollDX)
	default:
		l.printf("[Mouse][%s]\n", e.Kind)
	}
	return l.verdict(e.Kind)
}
