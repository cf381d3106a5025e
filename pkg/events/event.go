package events

import "fmt"

// Kind mirrors the Quartz CGEventType values so darwin events convert without a table.
type Kind uint32

const (
	KindNull              Kind = 0
	KindLeftMouseDown     Kind = 1
	KindLeftMouseUp       Kind = 2
	KindRightMouseDown    Kind = 3
	KindRightMouseUp      Kind = 4
	KindMouseMoved        Kind = 5
	KindLeftMouseDragged  Kind = 6
	KindRightMouseDragged Kind = 7
	KindKeyDown           Kind = 10
	KindKeyUp             Kind = 11
	KindFlagsChanged      Kind = 12
	KindScrollWheel       Kind = 22
	KindOtherMouseDown    Kind = 25
	KindOtherMouseUp      Kind = 26
	KindOtherMouseDragged Kind = 27

	// Tap notifications. They are delivered regardless of the mask.
	KindTapDisabledByTimeout   Kind = 0xFFFFFFFE
	KindTapDisabledByUserInput Kind = 0xFFFFFFFF
)

// String returns the Quartz name of the kind, or EventType(N) when unknown.
func (k Kind) String() string {
	switch k {
	case KindLeftMouseDown:
		return "LeftMouseDown"
	case KindLeftMouseUp:
		return "LeftMouseUp"
	case KindRightMouseDown:
		return "RightMouseDown"
	case KindRightMouseUp:
		return "RightMouseUp"
	case KindMouseMoved:
		return "MouseMoved"
	case KindLeftMouseDragged:
		return "LeftMouseDragged"
	case KindRightMouseDragged:
		return "RightMouseDragged"
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case KindFlagsChanged:
		return "FlagsChanged"
	case KindScrollWheel:
		return "ScrollWheel"
	case KindOtherMouseDown:
		return "OtherMouseDown"
	case KindOtherMouseUp:
		return "OtherMouseUp"
	case KindOtherMouseDragged:
		return "OtherMouseDragged"
	case KindTapDisabledByTimeout:
		return "TapDisabledByTimeout"
	case KindTapDisabledByUserInput:
		return "TapDisabledByUserInput"
	default:
		return fmt.Sprintf("EventType(%d)", uint32(k))
	}
}

// IsTapNotification reports whether the kind is a tap state change rather than input.
func (k Kind) IsTapNotification() bool {
	return k == KindTapDisabledByTimeout || k == KindTapDisabledByUserInput
}

// Flags mirrors the CGEventFlags modifier bits.
type Flags uint64

const (
	FlagAlphaShift  Flags = 0x00010000
	FlagShift       Flags = 0x00020000
	FlagControl     Flags = 0x00040000
	FlagAlternate   Flags = 0x00080000
	FlagCommand     Flags = 0x00100000
	FlagNumericPad  Flags = 0x00200000
	FlagHelp        Flags = 0x00400000
	FlagSecondaryFn Flags = 0x00800000
)

// Has reports whether every bit in f2 is set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Mask selects the event kinds a tap listens to.
type Mask uint64

// MaskOf builds a mask from the given kinds. Tap notifications are ignored since
// Quartz always delivers them.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		if k >= 64 {
			continue
		}
		m |= 1 << Mask(k)
	}
	return m
}

// Contains reports whether the kind is selected by the mask.
func (m Mask) Contains(k Kind) bool {
	if k.IsTapNotification() {
		return true
	}
	if k >= 64 {
		return false
	}
	return m&(1<<Mask(k)) != 0
}

// KeyboardMask is the fixed set observed by the keyboard logger.
var KeyboardMask = MaskOf(KindKeyDown, KindKeyUp)

// MouseMask is the fixed set observed by the mouse logger.
var MouseMask = MaskOf(
	KindMouseMoved,
	KindLeftMouseDown,
	KindLeftMouseUp,
	KindRightMouseDown,
	KindRightMouseUp,
	KindOtherMouseDown,
	KindOtherMouseUp,
	KindLeftMouseDragged,
	KindRightMouseDragged,
	KindOtherMouseDragged,
	KindScrollWheel,
)

// Event is a single intercepted input event. Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	KeyCode int64
	// Text is the Unicode text the key produces; empty when it could not be resolved.
	Text  string
	Flags Flags
	X     float64
	Y     float64
	// ScrollDY is the primary (vertical) axis, ScrollDX the horizontal one.
	ScrollDY int64
	ScrollDX int64
}

// Verdict tells the tap whether to deliver an event to the rest of the system.
type Verdict int

const (
	Pass Verdict = iota
	Drop
)

func (v Verdict) String() string {
	if v == Drop {
		return "drop"
	}
	return "pass"
}
