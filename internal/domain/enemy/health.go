package enemy

import (
	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
)

// Health is a monster's hit points
type Health struct {
	current float64
	max     float64
	changed event.Signal
}

var _ logic.Health = (*Health)(nil)

// NewHealth creates full health
func NewHealth(hp float64) *Health {
	return &Health{current: hp, max: hp}
}

func (h *Health) Current() float64 { return h.current }
func (h *Health) Max() float64     { return h.max }

func (h *Health) TakeDamage(damage float64) {
	if h.current <= 0 || damage <= 0 {
		return
	}
	h.current = max(0, h.current-damage)
	h.changed.Emit()
}

func (h *Health) OnHealthChanged(fn func()) (unsubscribe func()) {
	return h.changed.Subscribe(fn)
}
