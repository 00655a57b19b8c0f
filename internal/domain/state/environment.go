package state

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/providers/ads"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/storage"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

// Environment is what the lifecycle needs from the host process. Optional
// fields left nil get headless or offline defaults during bootstrap.
type Environment struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *monitoring.Metrics
	Loop    *runtime.Loop
	Scenes  *runtime.SceneLoader
	Curtain *ui.Curtain
	Data    fs.FS

	Input       input.Service
	Random      random.Service
	Store       storage.Store
	AdsPlatform ads.Platform
	IAPPlatform iap.Platform

	// Fatal receives errors from transitions that run in scene callbacks,
	// where there is no caller to return them to
	Fatal func(error)
}

func (e *Environment) fail(err error) {
	if e.Fatal != nil {
		e.Fatal(err)
		return
	}
	e.Log.Error("Lifecycle failed", zap.Error(err))
}

func (e *Environment) withDefaults() *Environment {
	env := *e
	if env.Config == nil {
		env.Config = config.Default()
	}
	env.Log = logging.OrNop(env.Log)
	if env.Loop == nil {
		env.Loop = runtime.NewLoop(env.Config.Game.FrameDuration(), nil, env.Log, env.Metrics)
	}
	if env.Scenes == nil {
		env.Scenes = runtime.NewSceneLoader(env.Log)
		env.Loop.Add(env.Scenes)
	}
	if env.Curtain == nil {
		env.Curtain = ui.NewCurtain()
		env.Loop.Add(env.Curtain)
	}
	return &env
}

// New builds a machine with the standard phases defined. Enter
// BootstrapState to start the game.
func New(env *Environment) *Machine {
	env = env.withDefaults()
	m := NewMachine(service.NewContainer(), env.Log, env.Metrics)

	Define(m, func(c *service.Container) (*BootstrapState, error) {
		return NewBootstrapState(m, env, c)
	})
	Define(m, func(c *service.Container) (*LoadProgressState, error) {
		return newLoadProgressState(c, env)
	})
	DefineWith(m, func(c *service.Container, level string) (*LoadLevelState, error) {
		return newLoadLevelState(c, env, level)
	})
	Define(m, func(c *service.Container) (*GameLoopState, error) {
		return newGameLoopState(c, env)
	})
	return m
}
