package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/openctrl/receiver/internal/buildinfo"
	"github.com/openctrl/receiver/pkg/capture"
	"github.com/openctrl/receiver/pkg/config"
	"github.com/openctrl/receiver/pkg/events"
	"github.com/openctrl/receiver/pkg/logging"
	"github.com/openctrl/receiver/pkg/permissions"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// errTapUnavailable marks failures already reported to the user with a hint.
var errTapUnavailable = errors.New("event tap unavailable")

// Deps carries the collaborators a tool command needs. Zero values use the
// platform defaults.
type Deps struct {
	NewAdapter func(log *zap.Logger) events.Adapter
	Trust      permissions.TrustFunc
	Sleep      func(time.Duration)
}

// formatter is what each tool plugs into the wait loop.
type formatter interface {
	Handle(events.Event) events.Verdict
	Suppressing() bool
}

type tool struct {
	name      string
	use       string
	title     string
	short     string
	example   string
	mask      events.Mask
	stopHint  string
	formatter func(cfg config.Config, out io.Writer, control *capture.Controller, log *zap.Logger) formatter
}

// Main runs a tool command and returns the process exit status.
func Main(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errTapUnavailable) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newToolCommand(t tool, deps Deps) *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:           t.use,
		Short:         t.short,
		Example:       t.example,
		Args:          cobra.NoArgs,
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd.Context(), t, deps, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVar(&cfg.Catch, "catch", cfg.Catch, "Suppress events (prevent them from reaching the OS)")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Diagnostic log level on stderr (debug, info, warn, error)")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Diagnostic log format (console, json)")
	return cmd
}

func runTool(ctx context.Context, t tool, deps Deps, cfg config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
		Color:  isTerminal(stderr),
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Named(t.name)

	env := events.DetectEnvironment(deps.Trust)
	log.Debug("event tap environment",
		zap.String("provider", env.Provider),
		zap.Bool("available", env.Available),
		zap.String("permission", env.Permission),
		zap.String("message", env.Message),
	)

	newAdapter := deps.NewAdapter
	if newAdapter == nil {
		newAdapter = func(l *zap.Logger) events.Adapter {
			return events.NewAdapter(events.Options{Logger: l})
		}
	}

	control := capture.NewController()
	f := t.formatter(cfg, stdout, control, log)

	summary, err := capture.Run(ctx, capture.Options{
		Adapter: newAdapter(logger.Named("tap")),
		Mask:    t.mask,
		Handler: f.Handle,
		Control: control,
		OnReady: func() { printBanner(stdout, t, f.Suppressing()) },
		Logger:  logger.Named("capture"),
		Sleep:   deps.Sleep,
	})
	if err != nil {
		if hint, ok := tapFailureHint(err, env); ok {
			fmt.Fprintf(stderr, "Error: Failed to create event tap.\n%s\n", hint)
			log.Debug("event tap could not be created", zap.Error(err))
			return fmt.Errorf("%w: %w", errTapUnavailable, err)
		}
		return err
	}

	if summary.Termination == capture.TerminationInterrupt {
		fmt.Fprintln(stdout, "\nLogger stopped by interrupt.")
		return nil
	}
	fmt.Fprintln(stdout, "Logger stopped.")
	return nil
}

func tapFailureHint(err error, env events.Environment) (string, bool) {
	switch {
	case errors.Is(err, events.ErrUnsupportedPlatform):
		return "Event taps are only available on macOS.", true
	case errors.Is(err, events.ErrAccessibilityPermission):
		if env.Guidance != "" {
			return env.Guidance, true
		}
		return permissions.AccessibilityGuidance, true
	default:
		return "", false
	}
}

func printBanner(w io.Writer, t tool, suppress bool) {
	state := "OFF"
	if suppress {
		state = "ON"
	}
	fmt.Fprintf(w, "%s started.\n", t.title)
	fmt.Fprintf(w, "Event suppression: %s\n", state)
	fmt.Fprintln(w, t.stopHint)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
