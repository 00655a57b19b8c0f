// Package input defines the player input contract and a scripted stand-in.
package input
