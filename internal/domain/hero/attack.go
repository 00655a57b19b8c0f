package hero

import (
	"time"

	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// MaxHits caps how many targets one swing can damage
const MaxHits = 3

// Overlap finds damageable things near a point
type Overlap interface {
	OverlapSphere(center types.Vector3, radius float64, max int) []logic.Health
}

// Attack swings at whatever is in front of the hero when the button is released
type Attack struct {
	input   input.Service
	overlap Overlap
	body    *Move
	stats   *progress.HeroStats
}

var _ progress.Reader = (*Attack)(nil)

// NewAttack creates an attack driven by body's position and facing
func NewAttack(in input.Service, overlap Overlap, body *Move) *Attack {
	return &Attack{input: in, overlap: overlap, body: body}
}

func (a *Attack) LoadProgress(p *progress.PlayerProgress) {
	a.stats = p.HeroStats
}

func (a *Attack) Tick(time.Duration) {
	if a.input.IsAttackButtonUp() {
		a.OnAttack()
	}
}

// OnAttack damages up to MaxHits targets and returns how many were hit
func (a *Attack) OnAttack() int {
	if a.stats == nil {
		return 0
	}
	hits := a.overlap.OverlapSphere(a.startPoint(), a.stats.DamageRadius, MaxHits)
	for _, h := range hits {
		h.TakeDamage(a.stats.Damage)
	}
	return len(hits)
}

func (a *Attack) startPoint() types.Vector3 {
	return a.body.Position().Add(a.body.Forward())
}
