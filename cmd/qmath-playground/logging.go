package main

import (
	"go.uber.org/zap"
)

// setupLogging returns a development logger writing to stderr when debug is
// set, otherwise a no-op logger
func setupLogging(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
