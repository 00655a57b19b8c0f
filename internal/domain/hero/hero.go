package hero

import (
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// Speed is the hero's walking speed in units per second
const Speed = 4.0

// Hero groups the components of the player character
type Hero struct {
	ID     string
	Health *Health
	Move   *Move
	Attack *Attack
}

// Position returns where the hero stands
func (h *Hero) Position() types.Vector3 { return h.Move.Position() }
