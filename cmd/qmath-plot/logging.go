package main

import (
	"go.uber.org/zap"
)

// setupLogging builds a debug logger writing to path; an empty path yields
// a no-op logger since stderr is owned by the screen
func setupLogging(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
