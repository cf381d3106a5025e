package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openctrl/receiver/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMouseLoggerLocationLines(t *testing.T) {
	var out bytes.Buffer
	l := NewMouseLogger(MouseOptions{Output: &out})

	require.Equal(t, events.Pass, l.Handle(events.Event{Kind: events.KindMouseMoved, X: 120.75, Y: 48.2}))
	l.Handle(events.Event{Kind: events.KindOtherMouseDragged, X: 1, Y: 2})
	l.Handle(events.Event{Kind: events.KindLeftMouseDown, X: 0.9, Y: 1079.99})

	assert.Equal(t, strings.Join([]string{
		"[Mouse][MouseMoved       ] x=120 y=48",
		"[Mouse][OtherMouseDragged] x=1 y=2",
		"[Mouse][LeftMouseDown    ] x=0 y=1079",
		"",
	}, "\n"), out.String())
}

func TestMouseLoggerScrollLine(t *testing.T) {
	var out bytes.Buffer
	l := NewMouseLogger(MouseOptions{Output: &out})

	l.Handle(events.Event{Kind: events.KindScrollWheel, ScrollDY: 3, ScrollDX: 0})

	assert.Equal(t, "[Mouse][ScrollWheel      ] dy=3 dx=0\n", out.String())
	assert.Contains(t, out.String(), "dy=3 dx=0")
}

func TestMouseLoggerUnknownKind(t *testing.T) {
	var out bytes.Buffer
	l := NewMouseLogger(MouseOptions{Output: &out})

	l.Handle(events.Event{Kind: events.Kind(23)})

	assert.Equal(t, "[Mouse][EventType(23)]\n", out.String())
}

func TestMouseLoggerSuppression(t *testing.T) {
	var out bytes.Buffer
	l := NewMouseLogger(MouseOptions{Output: &out, Suppress: true})

	assert.True(t, l.Suppressing())
	assert.Equal(t, events.Drop, l.Handle(events.Event{Kind: events.KindMouseMoved}))
	assert.Equal(t, events.Drop, l.Handle(events.Event{Kind: events.KindScrollWheel, ScrollDY: -1}))
	assert.Equal(t, events.Pass, l.Handle(events.Event{Kind: events.KindTapDisabledByTimeout}))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestMouseLoggerIgnoresWriteErrors(t *testing.T) {
	l := NewMouseLogger(MouseOptions{Output: failingWriter{}})
	assert.Equal(t, events.Pass, l.Handle(events.Event{Kind: events.KindRightMouseUp}))
}
