// Package assets exposes the read-only game data directory.
package assets
