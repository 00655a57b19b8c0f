package enemy

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// MonsterFactory builds monsters for spawners
type MonsterFactory interface {
	CreateMonster(monsterID string, at types.Vector3) (*Monster, error)
}

// Spawner places one monster unless it was already slain in a saved game
type Spawner struct {
	ID        string
	MonsterID string
	Position  types.Vector3

	factory MonsterFactory
	log     *zap.Logger
	monster *Monster
	slain   bool
}

var _ progress.Writer = (*Spawner)(nil)

// NewSpawner creates an idle spawner; it spawns when progress is loaded
func NewSpawner(id, monsterID string, at types.Vector3, factory MonsterFactory, log *zap.Logger) *Spawner {
	return &Spawner{
		ID:        id,
		MonsterID: monsterID,
		Position:  at,
		factory:   factory,
		log:       logging.OrNop(log),
	}
}

// Slain reports whether this spawner's monster is dead
func (s *Spawner) Slain() bool { return s.slain }

// Monster returns the live monster, if spawned
func (s *Spawner) Monster() *Monster { return s.monster }

func (s *Spawner) LoadProgress(p *progress.PlayerProgress) {
	if p.KillData.IsCleared(s.ID) {
		s.slain = true
		return
	}
	s.spawn()
}

func (s *Spawner) UpdateProgress(p *progress.PlayerProgress) {
	if s.slain {
		p.KillData.MarkCleared(s.ID)
	}
}

func (s *Spawner) spawn() {
	if s.monster != nil {
		return
	}
	m, err := s.factory.CreateMonster(s.MonsterID, s.Position)
	if err != nil {
		s.log.Error("Failed to spawn monster",
			zap.String("spawner", s.ID),
			zap.String("monster", s.MonsterID),
			zap.Error(err),
		)
		return
	}
	s.monster = m
	m.Death.OnDeath(func() { s.slain = true })
}
