// Package logic holds gameplay contracts shared by heroes and enemies, and
// the world objects that trigger saves.
package logic
