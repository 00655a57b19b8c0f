package enemy

import (
	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
)

// Death fires once when health runs out
type Death struct {
	health   logic.Health
	happened event.Once
	unsub    func()
}

// NewDeath starts watching health
func NewDeath(health logic.Health) *Death {
	d := &Death{health: health}
	d.unsub = health.OnHealthChanged(d.check)
	d.check()
	return d
}

// Dead reports whether the monster has died
func (d *Death) Dead() bool { return d.happened.Fired() }

// OnDeath runs fn when the monster dies, or immediately if it already has
func (d *Death) OnDeath(fn func()) (unsubscribe func()) {
	return d.happened.Subscribe(fn)
}

func (d *Death) check() {
	if d.happened.Fired() || d.health.Current() > 0 {
		return
	}
	d.unsub()
	d.happened.Fire()
}
