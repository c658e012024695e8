package util

import "go.uber.org/zap"

// NewLogger builds the process logger. Quiet raises the level to Error
// so informational output is suppressed while failures still print.
func NewLogger(env string, quiet bool) *zap.SugaredLogger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zap.Must(cfg.Build()).Sugar()
}
