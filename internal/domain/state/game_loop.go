package state

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/service"
)

// GameLoopState is the playing phase
type GameLoopState struct {
	env       *Environment
	saveLoad  saveload.Service
	autosaver *logic.Autosaver
	remove    func()
}

func newGameLoopState(c *service.Container, env *Environment) (*GameLoopState, error) {
	sl, err := service.Resolve[saveload.Service](c)
	if err != nil {
		return nil, err
	}
	return &GameLoopState{env: env, saveLoad: sl}, nil
}

// Autosaver returns the running autosaver, or nil when autosave is off
func (s *GameLoopState) Autosaver() *logic.Autosaver { return s.autosaver }

func (s *GameLoopState) Enter() error {
	interval := s.env.Config.Game.AutosaveInterval
	if interval <= 0 {
		return nil
	}
	s.autosaver = logic.NewAutosaver(s.saveLoad, interval, s.env.Log)
	s.remove = s.env.Loop.Add(s.autosaver)
	s.env.Log.Info("Autosave enabled", zap.Duration("interval", interval))
	return nil
}

func (s *GameLoopState) Exit() {
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
}
