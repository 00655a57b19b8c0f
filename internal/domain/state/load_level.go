package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/factory"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

// LoadLevelState loads a level scene behind the curtain and builds its world
type LoadLevelState struct {
	level    string
	env      *Environment
	machine  *Machine
	game     factory.GameFactory
	static   staticdata.Service
	progress *progress.Service
	windows  ui.Factory
}

func newLoadLevelState(c *service.Container, env *Environment, level string) (*LoadLevelState, error) {
	s := &LoadLevelState{level: level, env: env}
	var err error
	if s.machine, err = service.Resolve[*Machine](c); err != nil {
		return nil, err
	}
	if s.game, err = service.Resolve[factory.GameFactory](c); err != nil {
		return nil, err
	}
	if s.static, err = service.Resolve[staticdata.Service](c); err != nil {
		return nil, err
	}
	if s.progress, err = service.Resolve[*progress.Service](c); err != nil {
		return nil, err
	}
	if s.windows, err = service.Resolve[ui.Factory](c); err != nil {
		return nil, err
	}
	return s, nil
}

// Level returns the level this phase was entered with
func (s *LoadLevelState) Level() string { return s.level }

func (s *LoadLevelState) Enter() error {
	s.env.Curtain.Show()
	s.game.Cleanup()
	s.env.Scenes.Load(s.level, s.onLoaded)
	return nil
}

func (s *LoadLevelState) Exit() {
	s.env.Curtain.Hide()
}

func (s *LoadLevelState) onLoaded() {
	if err := s.buildWorld(); err != nil {
		s.env.fail(fmt.Errorf("load level %s: %w", s.level, err))
		return
	}
	s.informReaders()
	if err := Enter[*GameLoopState](s.machine); err != nil {
		s.env.fail(err)
	}
}

func (s *LoadLevelState) buildWorld() error {
	s.windows.CreateUIRoot()

	data, err := s.static.Level(s.level)
	if err != nil {
		return err
	}
	if _, err := s.game.CreateHero(data.InitialHeroPosition); err != nil {
		return err
	}
	for _, spawner := range data.Spawners {
		if _, err := s.game.CreateSpawner(spawner); err != nil {
			return err
		}
	}
	for _, trigger := range data.SaveTriggers {
		if _, err := s.game.CreateSaveTrigger(trigger); err != nil {
			return err
		}
	}
	if _, err := s.game.CreateHud(); err != nil {
		return err
	}

	s.env.Log.Info("Level built",
		zap.String("level", s.level),
		zap.Int("spawners", len(data.Spawners)),
		zap.Int("save_triggers", len(data.SaveTriggers)),
	)
	return nil
}

func (s *LoadLevelState) informReaders() {
	p := s.progress.Progress()
	for _, reader := range s.game.ProgressReaders() {
		reader.LoadProgress(p)
	}
}
