package enemy

import (
	"time"

	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// MinimalDistance is how close a monster walks to the hero
const MinimalDistance = 1.0

// HeroLocator tells monsters where the hero is
type HeroLocator interface {
	HeroPosition() (types.Vector3, bool)
	OnHeroCreated(fn func()) (unsubscribe func())
}

// MoveToHero walks the monster toward the hero once the hero exists
type MoveToHero struct {
	body        *Body
	heroes      HeroLocator
	speed       float64
	initialized bool
	unsub       func()
}

// NewMoveToHero starts following as soon as the hero is created
func NewMoveToHero(body *Body, heroes HeroLocator, speed float64) *MoveToHero {
	m := &MoveToHero{body: body, heroes: heroes, speed: speed}
	if _, ok := heroes.HeroPosition(); ok {
		m.initialized = true
	} else {
		m.unsub = heroes.OnHeroCreated(func() { m.initialized = true })
	}
	return m
}

// Initialized reports whether the hero has been seen
func (m *MoveToHero) Initialized() bool { return m.initialized }

func (m *MoveToHero) Tick(dt time.Duration) {
	if !m.initialized || m.body.Dead() {
		return
	}
	target, ok := m.heroes.HeroPosition()
	if !ok {
		return
	}

	offset := target.Sub(m.body.position)
	distance := offset.Length()
	if distance < MinimalDistance {
		return
	}
	step := min(m.speed*dt.Seconds(), distance-MinimalDistance)
	m.body.position = m.body.position.Add(offset.Normalized().Scale(step))
}

// Stop detaches from the hero notification
func (m *MoveToHero) Stop() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}
