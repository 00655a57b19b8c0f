// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Game components take a *zap.Logger and use OrNop so that tests and
// headless tools can pass nil.
//
// Example Usage:
//
//	logger := logging.FromConfig(cfg.Logging.Level, cfg.Logging.Development)
//	logger.Info("Entering state", zap.String("state", "bootstrap"))
//	logger.Error("Save failed", zap.Error(err))
package logging
