package logic

import "github.com/GriffinCanCode/skullgate/internal/shared/types"

// Health is anything that can take damage
type Health interface {
	Current() float64
	Max() float64
	TakeDamage(damage float64)
	OnHealthChanged(fn func()) (unsubscribe func())
}

// Positioned exposes a world position
type Positioned interface {
	Position() types.Vector3
}
