package cmd

import (
	"io"

	"github.com/openctrl/receiver/pkg/capture"
	"github.com/openctrl/receiver/pkg/config"
	"github.com/openctrl/receiver/pkg/eventlog"
	"github.com/openctrl/receiver/pkg/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewKeyboardCommand builds the keyboard-logger command. It stops on a key-down of "q".
func NewKeyboardCommand(deps Deps) *cobra.Command {
	return newToolCommand(tool{
		name:  "keyboard",
		use:   "keyboard-logger",
		title: "Keyboard Event Logger",
		short: "macOS keyboard event logger using CGEventTap",
		example: `  keyboard-logger              # Log keyboard events without suppressing them
  keyboard-logger --catch      # Log and suppress keyboard events (blocks OS input)`,
		mask:     events.KeyboardMask,
		stopHint: "Press 'q' to stop logging.",
		formatter: func(cfg config.Config, out io.Writer, control *capture.Controller, log *zap.Logger) formatter {
			return eventlog.NewKeyboardLogger(eventlog.KeyboardOptions{
				Output:     out,
				Suppress:   cfg.Catch,
				KillSwitch: control,
				Logger:     log,
			})
		},
	}, deps)
}
