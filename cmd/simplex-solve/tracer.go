package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ivasenko/gosimplex"
)

// zapTracer adapts simplex.Tracer to a zap.SugaredLogger so the
// solver's pivot-by-pivot trace flows through the same structured
// logger as the rest of the command.
type zapTracer struct {
	log *zap.SugaredLogger
}

var _ simplex.Tracer = (*zapTracer)(nil)

func (t *zapTracer) Tracef(format string, args ...interface{}) {
	t.log.Debugw(fmt.Sprintf(format, args...))
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zcfg.Build()
}
