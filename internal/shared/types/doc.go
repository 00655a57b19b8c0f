// Package types provides small value types shared across the game packages.
//
// Core Types:
//   - Vector3: World-space position or direction
//   - Vector2: Planar input axis
//
// Example Usage:
//
//	step := input.Axis().ToWorld().Normalized().Scale(speed * dt)
//	hero.Position = hero.Position.Add(step)
package types
