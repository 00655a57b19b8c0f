package state

import (
	"context"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/service"
)

// Starting values for a new game
const (
	InitialLevel        = "Main"
	InitialMaxHP        = 50
	InitialDamage       = 1
	InitialDamageRadius = 0.5
)

// LoadProgressState restores saved progress or starts a new game
type LoadProgressState struct {
	machine  *Machine
	progress *progress.Service
	saveLoad saveload.Service
	log      *zap.Logger
}

func newLoadProgressState(c *service.Container, env *Environment) (*LoadProgressState, error) {
	m, err := service.Resolve[*Machine](c)
	if err != nil {
		return nil, err
	}
	ps, err := service.Resolve[*progress.Service](c)
	if err != nil {
		return nil, err
	}
	sl, err := service.Resolve[saveload.Service](c)
	if err != nil {
		return nil, err
	}
	return &LoadProgressState{machine: m, progress: ps, saveLoad: sl, log: env.Log}, nil
}

func (s *LoadProgressState) Enter() error {
	p := s.loadOrNew()
	s.progress.SetProgress(p)
	return EnterWith[*LoadLevelState](s.machine, p.WorldData.PositionOnLevel.Level)
}

func (s *LoadProgressState) Exit() {}

func (s *LoadProgressState) loadOrNew() *progress.PlayerProgress {
	p, err := s.saveLoad.LoadProgress(context.Background())
	if err != nil {
		s.log.Error("Failed to read saved progress, starting fresh", zap.Error(err))
	}
	if p != nil {
		s.log.Info("Progress restored", zap.String("level", p.WorldData.PositionOnLevel.Level))
		return p
	}
	s.log.Info("Starting new game")
	return NewProgress()
}

// NewProgress returns the aggregate a new game starts from
func NewProgress() *progress.PlayerProgress {
	p := progress.New(InitialLevel)
	p.HeroState.MaxHP = InitialMaxHP
	p.HeroStats.Damage = InitialDamage
	p.HeroStats.DamageRadius = InitialDamageRadius
	p.HeroState.ResetHP()
	return p
}
