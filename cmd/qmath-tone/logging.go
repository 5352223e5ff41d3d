package main

import (
	"go.uber.org/zap"
)

func setupLogging(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
