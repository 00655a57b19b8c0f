package enemy

import (
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// Body is a monster's place in the world
type Body struct {
	position types.Vector3
	death    *Death
}

func (b *Body) Position() types.Vector3 { return b.position }

// Dead reports whether the owner died
func (b *Body) Dead() bool { return b.death != nil && b.death.Dead() }

// Monster groups the components of one enemy
type Monster struct {
	ID     string
	TypeID string
	Body   *Body
	Health *Health
	Death  *Death
	Move   *MoveToHero
	Loot   *LootSpawner
}

// Parts are the collaborators a monster is assembled from
type Parts struct {
	Heroes    HeroLocator
	Loot      LootFactory
	Random    random.Service
	MoveSpeed float64
	MinLoot   int
	MaxLoot   int
}

// NewMonster assembles a living monster at position
func NewMonster(id, typeID string, hp float64, at types.Vector3, parts Parts) *Monster {
	health := NewHealth(hp)
	death := NewDeath(health)
	body := &Body{position: at, death: death}

	return &Monster{
		ID:     id,
		TypeID: typeID,
		Body:   body,
		Health: health,
		Death:  death,
		Move:   NewMoveToHero(body, parts.Heroes, parts.MoveSpeed),
		Loot:   NewLootSpawner(body, death, parts.Loot, parts.Random, parts.MinLoot, parts.MaxLoot),
	}
}

func (m *Monster) Position() types.Vector3 { return m.Body.Position() }
