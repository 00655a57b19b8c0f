// Package config provides 12-factor configuration management for the game
// runtime.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Game: Frame rate, data directory, initial scene, autosave
//   - Storage: Save backend (file, sqlite, redis, memory) and codec
//   - Logging: Log level and output format
//   - Debug: Optional debug HTTP listener
//   - Platform: Store and ads platform settings
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	loop := runtime.NewLoop(cfg.Game.FrameDuration(), dispatcher, logger)
//
// Environment Variables:
//   - FRAME_RATE, GAME_DATA_DIR, INITIAL_SCENE, AUTOSAVE_INTERVAL, SAVE_ON_EXIT
//   - SAVE_BACKEND, SAVE_PATH, SAVE_CODEC, REDIS_ADDR, REDIS_PREFIX, STORAGE_BREAKER
//   - LOG_LEVEL, LOG_DEV
//   - DEBUG_ADDR
//   - IAP_ENVIRONMENT, ADS_GAME_ID, PLATFORM_LATENCY
package config
