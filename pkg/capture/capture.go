package capture

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/openctrl/receiver/pkg/events"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSlice bounds each run of the platform loop.
	DefaultSlice = 250 * time.Millisecond
	// DefaultPause is slept between slices.
	DefaultPause = 10 * time.Millisecond
)

// Termination names why the wait loop stopped.
type Termination string

const (
	TerminationKillSwitch Termination = "kill-switch"
	TerminationInterrupt  Termination = "interrupt"
)

// Options controls the wait loop.
type Options struct {
	Adapter events.Adapter
	Mask    events.Mask
	Handler events.Handler
	// Control is polled between slices. Nil means only ctx stops the loop.
	Control *Controller
	// OnReady runs once the tap is armed, before the first slice.
	OnReady func()
	Slice   time.Duration
	Pause   time.Duration
	Logger  *zap.Logger
	Clock   func() time.Time
	Sleep   func(time.Duration)
}

// Summary describes a finished wait loop.
type Summary struct {
	Termination Termination
	Reason      string
	Slices      int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Run opens the tap on a locked OS thread and pumps it until the controller is
// killed or ctx is cancelled. A tap that cannot be opened is returned as an error
// wrapping the adapter's error.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Adapter == nil {
		return Summary{}, errors.New("event tap adapter must be provided")
	}
	if opts.Handler == nil {
		return Summary{}, errors.New("event handler must be provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Control == nil {
		opts.Control = NewController()
	}
	if opts.Slice <= 0 {
		opts.Slice = DefaultSlice
	}
	if opts.Pause <= 0 {
		opts.Pause = DefaultPause
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	log := opts.Logger
	group, groupCtx := errgroup.WithContext(ctx)

	var summary Summary
	group.Go(func() error {
		var err error
		summary, err = pump(ctx, opts)
		return err
	})
	group.Go(func() error {
		select {
		case <-opts.Control.Done():
			log.Info("kill switch tripped", zap.String("reason", opts.Control.Reason()))
		case <-groupCtx.Done():
			if ctx.Err() != nil {
				log.Info("interrupt received, stopping after current slice")
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return Summary{}, err
	}
	log.Info("wait loop finished",
		zap.String("termination", string(summary.Termination)),
		zap.Int("slices", summary.Slices),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	return summary, nil
}

func pump(ctx context.Context, opts Options) (Summary, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := opts.Logger
	handle, err := opts.Adapter.Open(opts.Mask, opts.Handler)
	if err != nil {
		return Summary{}, fmt.Errorf("open event tap: %w", err)
	}
	defer func() {
		if err := handle.Close(); err != nil {
			log.Warn("close event tap", zap.Error(err))
		}
	}()

	if opts.OnReady != nil {
		opts.OnReady()
	}

	summary := Summary{StartedAt: opts.Clock()}
	log.Debug("wait loop started", zap.Duration("slice", opts.Slice), zap.Duration("pause", opts.Pause))
	for {
		if opts.Control.Stopped() {
			summary.Termination = TerminationKillSwitch
			summary.Reason = opts.Control.Reason()
			break
		}
		if ctx.Err() != nil {
			summary.Termination = TerminationInterrupt
			summary.Reason = ctx.Err().Error()
			break
		}
		if err := handle.RunFor(opts.Slice); err != nil {
			return Summary{}, fmt.Errorf("run event tap: %w", err)
		}
		summary.Slices++
		opts.Sleep(opts.Pause)
	}
	summary.FinishedAt = opts.Clock()
	return summary, nil
}
