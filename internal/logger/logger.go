// Package logger builds the zap loggers used by the junction command.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel indicates a level name zap does not recognize.
var ErrUnknownLevel = errors.New("logger: unknown level")

// Options selects output format and minimum level.
type Options struct {
	// JSON switches from the console encoder to zap's production JSON encoder.
	JSON bool
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// ParseLevel converts a level name to a zapcore.Level.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return lvl, errors.Wrapf(ErrUnknownLevel, "%q", name)
	}

	return lvl, nil
}

// New builds a logger writing to stderr so results on stdout stay clean.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.JSON {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		l, err := config.Build()
		if err != nil {
			return nil, errors.Wrap(err, "logger: build json logger")
		}

		return l, nil
	}

	return newConsole(zapcore.Lock(os.Stderr), lvl), nil
}

// newConsole is a compact human-readable logger without timestamps or caller info.
func newConsole(w zapcore.WriteSyncer, lvl zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, lvl))
}
