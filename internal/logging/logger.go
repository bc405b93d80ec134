// Package logging builds the single *zap.Logger threaded through every
// node component by constructor injection.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-profile zap logger (JSON encoding, info level)
// with node_id attached to every line, or a development-profile console
// logger when debug is true.
func New(nodeID int64, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.Int64("node_id", nodeID)), nil
}
