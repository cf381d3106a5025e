package events

import "errors"

// ErrAccessibilityPermission indicates the host must grant Accessibility trust.
var ErrAccessibilityPermission = errors.New("macOS accessibility permission required for event tap")

// ErrUnsupportedPlatform is returned by the default adapter outside macOS.
var ErrUnsupportedPlatform = errors.New("event tap not supported on this platform")

// ErrClosed is returned when a closed handle is pumped.
var ErrClosed = errors.New("event tap closed")
