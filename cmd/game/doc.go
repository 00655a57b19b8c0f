// Package main runs the game lifecycle headless.
//
// The game boots its services, restores the last saved progress and builds
// the saved level, then runs the frame loop until interrupted.
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags override selected variables
//
// Usage:
//
//	# Default file save slot under .save
//	./game -data ./data
//
//	# SQLite slot with the debug surface on
//	SAVE_BACKEND=sqlite SAVE_PATH=./save.db ./game -debug 127.0.0.1:7070
//
// Signals:
//   - SIGINT, SIGTERM: save progress (SAVE_ON_EXIT) and exit
package main
