package eventlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/openctrl/receiver/pkg/events"
	"go.uber.org/zap"
)

// KillSwitchKey stops the keyboard logger when pressed, in either case.
const KillSwitchKey = "q"

// KillSwitch is tripped by the keyboard logger on a key-down of KillSwitchKey.
type KillSwitch interface {
	Kill(reason string)
}

// KeyboardOptions configures a KeyboardLogger.
type KeyboardOptions struct {
	Output     io.Writer
	Suppress   bool
	KillSwitch KillSwitch
	Logger     *zap.Logger
}

// KeyboardLogger formats key events and owns the kill-switch check.
type KeyboardLogger struct {
	printer
	kill KillSwitch
}

// NewKeyboardLogger constructs a keyboard formatter. Output defaults to stdout.
func NewKeyboardLogger(opts KeyboardOptions) *KeyboardLogger {
	return &KeyboardLogger{
		printer: newPrinter(opts.Output, opts.Suppress, opts.Logger),
		kill:    opts.KillSwitch,
	}
}

// Handle formats one event and returns whether it passes through.
func (l *KeyboardLogger) Handle(e events.Event) events.Verdict {
	switch e.Kind {
	case events.KindTapDisabledByTimeout:
		l.log.Debug("tap timeout passed through")
	case events.KindKeyDown, events.KindKeyUp:
		key := KeyText(e)
		if e.Kind == events.KindKeyDown && strings.ToLower(key) == KillSwitchKey {
			if l.kill != nil {
				l.kill.Kill("kill-switch key pressed")
			}
			l.printf("Kill-switch activated: '%s' pressed. Stopping logger.\n", KillSwitchKey)
			break
		}
		l.printf("[Keyboard][%s] %s [%s]\n", e.Kind, key, Modifiers(e.Flags))
	default:
		l.printf("[Keyboard][%s]\n", e.Kind)
	}
	return l.verdict(e.Kind)
}

// KeyText returns the Unicode text of a key event, or "<keycode N>" when the key
// produced no text.
func KeyText(e events.Event) string {
	if e.Text != "" {
		return e.Text
	}
	return fmt.Sprintf("<keycode %d>", e.KeyCode)
}

var modifierOrder = []struct {
	flag events.Flags
	name string
}{
	{events.FlagShift, "Shift"},
	{events.FlagControl, "Ctrl"},
	{events.FlagAlternate, "Alt"},
	{events.FlagCommand, "Cmd"},
	{events.FlagAlphaShift, "CapsLock"},
	{events.FlagHelp, "Help"},
	{events.FlagSecondaryFn, "Fn"},
	{events.FlagNumericPad, "NumPad"},
}

// Modifiers renders the held modifiers "+"-joined in a fixed order, or "None".
func Modifiers(flags events.Flags) string {
	names := make([]string, 0, len(modifierOrder))
	for _, m := range modifierOrder {
		if flags.Has(m.flag) {
			names = append(names, m.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
