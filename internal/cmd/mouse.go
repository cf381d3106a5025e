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

// NewMouseCommand builds the mouse-logger command. It runs until interrupted.
func NewMouseCommand(deps Deps) *cobra.Command {
	return newToolCommand(tool{
		name:  "mouse",
		use:   "mouse-logger",
		title: "Mouse Event Logger",
		short: "macOS mouse event logger using CGEventTap",
		example: `  mouse-logger              # Log mouse events without suppressing them
  mouse-logger --catch      # Log and suppress mouse events (blocks OS input)`,
		mask:     events.MouseMask,
		stopHint: "Press Ctrl+C to stop logging.",
		formatter: func(cfg config.Config, out io.Writer, _ *capture.Controller, log *zap.Logger) formatter {
			return eventlog.NewMouseLogger(eventlog.MouseOptions{
				Output:   out,
				Suppress: cfg.Catch,
				Logger:   log,
			})
		},
	}, deps)
}
