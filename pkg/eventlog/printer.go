package eventlog

import (
	"fmt"
	"io"
	"os"

	"github.com/openctrl/receiver/pkg/events"
	"go.uber.org/zap"
)

// printer holds what every formatter shares: the line sink, the suppression flag
// fixed at construction, and a diagnostics logger.
type printer struct {
	out      io.Writer
	suppress bool
	log      *zap.Logger
}

func newPrinter(out io.Writer, suppress bool, log *zap.Logger) printer {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return printer{out: out, suppress: suppress, log: log}
}

func (p printer) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		p.log.Debug("write event line", zap.Error(err))
	}
}

// verdict applies the suppression flag. Tap timeouts always pass so the re-armed
// tap keeps the original notification.
func (p printer) verdict(kind events.Kind) events.Verdict {
	if kind == events.KindTapDisabledByTimeout || !p.suppress {
		return events.Pass
	}
	return events.Drop
}

// Suppressing reports whether the formatter drops events.
func (p printer) Suppressing() bool {
	return p.suppress
}
