package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/openctrl/receiver/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// consoleTimeLayout keeps console lines short; JSON output carries RFC3339 UTC instead.
const consoleTimeLayout = "15:04:05.000000000"

// Options describe how to configure a logger instance.
type Options struct {
	Level  string
	Format string
	Output io.Writer
	// Color enables ANSI level colours in console output.
	Color bool
}

// New creates a structured zap logger writing to opts.Output (stderr by default).
func New(opts Options) (*zap.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	format, err := config.NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = utcRFC3339
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(consoleTimeLayout)
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		if opts.Color {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unhandled log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), lvl)
	return zap.New(core), nil
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	normalized, err := config.NormalizeLogLevel(level)
	if err != nil {
		return zap.AtomicLevel{}, err
	}

	var lvl zapcore.Level
	switch normalized {
	case "info":
		lvl = zapcore.InfoLevel
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		return zap.AtomicLevel{}, fmt.Errorf("unhandled log level %q", normalized)
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

func utcRFC3339(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339))
}
