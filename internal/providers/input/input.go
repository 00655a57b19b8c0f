package input

import (
	"sync"

	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// Service reports player intent for the current frame
type Service interface {
	Axis() types.Vector2
	IsAttackButtonUp() bool
}

// Headless is a scripted input source for tests, bots and the debug server.
// An attack press is reported as released exactly once.
type Headless struct {
	mu      sync.Mutex
	axis    types.Vector2
	attacks int
}

// NewHeadless creates an idle input source
func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Axis() types.Vector2 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.axis
}

// SetAxis sets the movement axis, clamped to unit length
func (h *Headless) SetAxis(axis types.Vector2) {
	if l := axis.Length(); l > 1 {
		axis = types.Vector2{X: axis.X / l, Y: axis.Y / l}
	}
	h.mu.Lock()
	h.axis = axis
	h.mu.Unlock()
}

// PressAttack queues one attack button release
func (h *Headless) PressAttack() {
	h.mu.Lock()
	h.attacks++
	h.mu.Unlock()
}

func (h *Headless) IsAttackButtonUp() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.attacks == 0 {
		return false
	}
	h.attacks--
	return true
}
