package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/min1324/posintset/capi"
)

// envLogLevel selects the level of boundary logs written to stderr.
const envLogLevel = "POSINTSET_LOG_LEVEL"

func init() {
	l, err := newLogger(os.Getenv(envLogLevel))
	if err != nil {
		return
	}
	capi.SetLogger(l)
}

// newLogger builds the library logger. an empty level means warn,
// "off" disables logging.
func newLogger(level string) (*zap.Logger, error) {
	if level == "off" {
		return zap.NewNop(), nil
	}
	lvl := zapcore.WarnLevel
	if level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Named("posintset"), nil
}
