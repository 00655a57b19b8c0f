package hero

import (
	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
)

// Health tracks the hero's hit points in the shared HeroState
type Health struct {
	state   *progress.HeroState
	changed event.Signal
}

var (
	_ logic.Health    = (*Health)(nil)
	_ progress.Writer = (*Health)(nil)
)

func (h *Health) Current() float64 {
	if h.state == nil {
		return 0
	}
	return h.state.CurrentHP
}

func (h *Health) Max() float64 {
	if h.state == nil {
		return 0
	}
	return h.state.MaxHP
}

// Dead reports whether the hero has no hit points left
func (h *Health) Dead() bool { return h.state != nil && h.state.CurrentHP <= 0 }

func (h *Health) TakeDamage(damage float64) {
	if h.state == nil || h.state.CurrentHP <= 0 || damage <= 0 {
		return
	}
	h.state.CurrentHP = max(0, h.state.CurrentHP-damage)
	h.changed.Emit()
}

func (h *Health) OnHealthChanged(fn func()) (unsubscribe func()) {
	return h.changed.Subscribe(fn)
}

func (h *Health) LoadProgress(p *progress.PlayerProgress) {
	h.state = p.HeroState
	h.changed.Emit()
}

func (h *Health) UpdateProgress(p *progress.PlayerProgress) {
	if h.state == nil || p.HeroState == h.state {
		return
	}
	p.HeroState.CurrentHP = h.state.CurrentHP
	p.HeroState.MaxHP = h.state.MaxHP
}
