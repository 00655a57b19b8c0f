package enemy

import (
	"time"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// PickupRadius is how close the hero must be to collect loot
const PickupRadius = 1.0

// Loot is a pile of skulls lying in the world
type Loot struct {
	ID       string
	Value    int
	position types.Vector3
	heroes   HeroLocator
	progress *progress.Service
	picked   bool
}

// NewLoot drops value skulls at position
func NewLoot(id string, value int, position types.Vector3, heroes HeroLocator, progressService *progress.Service) *Loot {
	return &Loot{
		ID:       id,
		Value:    value,
		position: position,
		heroes:   heroes,
		progress: progressService,
	}
}

func (l *Loot) Position() types.Vector3 { return l.position }

// Picked reports whether the loot was collected
func (l *Loot) Picked() bool { return l.picked }

func (l *Loot) Tick(time.Duration) {
	if l.picked {
		return
	}
	hero, ok := l.heroes.HeroPosition()
	if ok && types.Distance(hero, l.position) <= PickupRadius {
		l.Collect()
	}
}

// Collect adds the loot to the player's total once
func (l *Loot) Collect() {
	if l.picked {
		return
	}
	p := l.progress.Progress()
	if p == nil {
		return
	}
	l.picked = true
	p.WorldData.LootData.Add(l.Value)
}

// LootFactory places loot in the world
type LootFactory interface {
	CreateLoot(at types.Vector3, value int) *Loot
}

// LootSpawner drops loot where the monster died
type LootSpawner struct {
	body     *Body
	factory  LootFactory
	random   random.Service
	min, max int
	dropped  *Loot
}

// NewLootSpawner drops between min and max skulls, inclusive, on death
func NewLootSpawner(body *Body, death *Death, factory LootFactory, rng random.Service, min, max int) *LootSpawner {
	s := &LootSpawner{body: body, factory: factory, random: rng, min: min, max: max}
	death.OnDeath(s.spawn)
	return s
}

// Dropped returns the loot created on death, if any
func (s *LootSpawner) Dropped() *Loot { return s.dropped }

func (s *LootSpawner) spawn() {
	value := s.random.Next(s.min, s.max+1)
	s.dropped = s.factory.CreateLoot(s.body.position, value)
}
