//go:build darwin

package events

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

extern CGEventRef goHandleEvent(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo);

static CFMachPortRef createEventTap(uintptr_t handle, CGEventMask mask) {
        return CGEventTapCreate(kCGHIDEventTap,
                                kCGHeadInsertEventTap,
                                kCGEventTapOptionDefault,
                                mask,
                                goHandleEvent,
                                (void *)handle);
}

static CFRunLoopSourceRef attachEventTap(CFMachPortRef tap, CFRunLoopRef loop) {
        CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
        if (source == NULL) {
                return NULL;
        }
        CFRunLoopAddSource(loop, source, kCFRunLoopCommonModes);
        CGEventTapEnable(tap, true);
        return source;
}

static void detachEventTap(CFMachPortRef tap, CFRunLoopRef loop, CFRunLoopSourceRef source) {
        CGEventTapEnable(tap, false);
        CFRunLoopRemoveSource(loop, source, kCFRunLoopCommonModes);
        CFMachPortInvalidate(tap);
        CFRelease(source);
        CFRelease(tap);
}

static void enableEventTap(CFMachPortRef tap) {
        CGEventTapEnable(tap, true);
}

static CFRunLoopRef currentRunLoop(void) {
        return CFRunLoopGetCurrent();
}

static void runLoopFor(double seconds) {
        CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false);
}

static int64_t cgEventGetKeycode(CGEventRef event) {
        return CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
}

static int cgEventGetUnicode(CGEventRef event, UniChar *buf, int max) {
        UniCharCount length = 0;
        CGEventKeyboardGetUnicodeString(event, (UniCharCount)max, &length, buf);
        return (int)length;
}

static uint64_t cgEventGetFlags(CGEventRef event) {
        return (uint64_t)CGEventGetFlags(event);
}

static double cgEventGetX(CGEventRef event) {
        return CGEventGetLocation(event).x;
}

static double cgEventGetY(CGEventRef event) {
        return CGEventGetLocation(event).y;
}

static int64_t cgEventGetScrollAxis1(CGEventRef event) {
        return CGEventGetIntegerValueField(event, kCGScrollWheelEventDeltaAxis1);
}

static int64_t cgEventGetScrollAxis2(CGEventRef event) {
        return CGEventGetIntegerValueField(event, kCGScrollWheelEventDeltaAxis2);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime/cgo"
	"time"
	"unicode/utf16"
	"unsafe"

	"go.uber.org/zap"
)

// maxKeyText matches the four UniChars a single keystroke can produce.
const maxKeyText = 4

type quartzAdapter struct {
	log *zap.Logger
}

func defaultAdapter(log *zap.Logger) Adapter {
	return &quartzAdapter{log: log}
}

type quartzHandle struct {
	log     *zap.Logger
	handler Handler
	handle  cgo.Handle
	tap     C.CFMachPortRef
	source  C.CFRunLoopSourceRef
	loop    C.CFRunLoopRef
	closed  bool
}

// Open must be called on the OS thread that will later call RunFor.
func (a *quartzAdapter) Open(mask Mask, handler Handler) (Handle, error) {
	if handler == nil {
		return nil, errors.New("event tap handler must not be nil")
	}
	h := &quartzHandle{
		log:     a.log,
		handler: handler,
	}
	h.handle = cgo.NewHandle(h)

	tap := C.createEventTap(C.uintptr_t(h.handle), C.CGEventMask(mask))
	if tap == 0 {
		h.handle.Delete()
		return nil, fmt.Errorf("create event tap: %w", ErrAccessibilityPermission)
	}
	h.tap = tap
	h.loop = C.currentRunLoop()
	source := C.attachEventTap(tap, h.loop)
	if source == 0 {
		C.CFMachPortInvalidate(tap)
		C.CFRelease(C.CFTypeRef(tap))
		h.handle.Delete()
		return nil, errors.New("create run loop source for event tap")
	}
	h.source = source
	a.log.Debug("event tap armed", zap.Uint64("mask", uint64(mask)))
	return h, nil
}

func (h *quartzHandle) RunFor(d time.Duration) error {
	if h.closed {
		return ErrClosed
	}
	C.runLoopFor(C.double(d.Seconds()))
	return nil
}

func (h *quartzHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	C.detachEventTap(h.tap, h.loop, h.source)
	h.handle.Delete()
	h.log.Debug("event tap closed")
	return nil
}

func (h *quartzHandle) rearm() {
	C.enableEventTap(h.tap)
}

func convertEvent(kind Kind, event C.CGEventRef) Event {
	out := Event{Kind: kind}
	switch kind {
	case KindKeyDown, KindKeyUp, KindFlagsChanged:
		out.KeyCode = int64(C.cgEventGetKeycode(event))
		out.Flags = Flags(C.cgEventGetFlags(event))
		out.Text = keyText(event)
	case KindScrollWheel:
		out.ScrollDY = int64(C.cgEventGetScrollAxis1(event))
		out.ScrollDX = int64(C.cgEventGetScrollAxis2(event))
		out.X = float64(C.cgEventGetX(event))
		out.Y = float64(C.cgEventGetY(event))
		out.Flags = Flags(C.cgEventGetFlags(event))
	case KindMouseMoved,
		KindLeftMouseDown, KindLeftMouseUp, KindLeftMouseDragged,
		KindRightMouseDown, KindRightMouseUp, KindRightMouseDragged,
		KindOtherMouseDown, KindOtherMouseUp, KindOtherMouseDragged:
		out.X = float64(C.cgEventGetX(event))
		out.Y = float64(C.cgEventGetY(event))
		out.Flags = Flags(C.cgEventGetFlags(event))
	}
	return out
}

func keyText(event C.CGEventRef) string {
	var buf [maxKeyText]C.UniChar
	n := int(C.cgEventGetUnicode(event, &buf[0], maxKeyText))
	if n <= 0 || n > maxKeyText {
		return ""
	}
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = uint16(buf[i])
	}
	return string(utf16.Decode(units))
}

//export goHandleEvent
func goHandleEvent(_ C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, userInfo unsafe.Pointer) C.CGEventRef {
	h, ok := cgo.Handle(uintptr(userInfo)).Value().(*quartzHandle)
	if !ok || h.closed {
		return event
	}

	kind := Kind(eventType)
	if kind == KindTapDisabledByTimeout {
		h.log.Warn("event tap disabled by timeout, re-enabling")
		h.rearm()
	}

	if h.handler(convertEvent(kind, event)) == Drop {
		return 0
	}
	return event
}
