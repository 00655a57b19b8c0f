package state

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/factory"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/providers/ads"
	"github.com/GriffinCanCode/skullgate/internal/providers/assets"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/storage"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

// BootstrapState fills the container and loads the initial scene
type BootstrapState struct {
	machine   *Machine
	env       *Environment
	container *service.Container
}

// NewBootstrapState creates the bootstrap phase for m
func NewBootstrapState(m *Machine, env *Environment, c *service.Container) (*BootstrapState, error) {
	if m == nil || env == nil || c == nil {
		return nil, fmt.Errorf("bootstrap: incomplete environment")
	}
	return &BootstrapState{machine: m, env: env, container: c}, nil
}

func (s *BootstrapState) Enter() error {
	if err := s.registerServices(); err != nil {
		return fmt.Errorf("register services: %w", err)
	}
	s.env.Metrics.SetServices(s.container.Len())
	s.env.Log.Info("Services registered", zap.Int("count", s.container.Len()))

	s.env.Scenes.Load(s.env.Config.Game.InitialScene, func() {
		if err := Enter[*LoadProgressState](s.machine); err != nil {
			s.env.fail(err)
		}
	})
	return nil
}

func (s *BootstrapState) Exit() {}

// registerServices registers every service. Each step resolves only what an
// earlier step registered.
func (s *BootstrapState) registerServices() error {
	c := s.container
	env := s.env
	cfg := env.Config

	if err := service.Register(c, s.machine); err != nil {
		return err
	}

	data := env.Data
	if data == nil {
		data = os.DirFS(cfg.Game.DataDir)
	}
	if err := service.Register[assets.Provider](c, assets.New(data)); err != nil {
		return err
	}

	static, err := staticdata.Load(service.MustResolve[assets.Provider](c))
	if err != nil {
		return err
	}
	if err := service.Register[staticdata.Service](c, static); err != nil {
		return err
	}

	adsPlatform := env.AdsPlatform
	if adsPlatform == nil {
		adsPlatform = ads.NewOffline(cfg.Platform.Latency)
	}
	adsService := ads.NewService(adsPlatform, env.Loop.Dispatcher(), cfg.Platform.AdsGameID, env.Log, env.Metrics)
	if err := adsService.Initialize(); err != nil {
		env.Log.Warn("Ads unavailable", zap.Error(err))
	}
	if err := service.Register[ads.Service](c, adsService); err != nil {
		return err
	}

	in := env.Input
	if in == nil {
		in = input.NewHeadless()
	}
	if err := service.Register(c, in); err != nil {
		return err
	}

	rng := env.Random
	if rng == nil {
		rng = random.New(0)
	}
	if err := service.Register(c, rng); err != nil {
		return err
	}

	if err := service.Register(c, progress.NewService()); err != nil {
		return err
	}

	store := env.Store
	if store == nil {
		store, err = storage.Open(context.Background(), cfg.Storage, env.Log)
		if err != nil {
			return err
		}
	}
	if err := service.Register(c, store); err != nil {
		return err
	}

	if err := s.registerIAP(); err != nil {
		return err
	}

	uiFactory := ui.NewFactory(
		service.MustResolve[staticdata.Service](c),
		service.MustResolve[*progress.Service](c),
		service.MustResolve[iap.Service](c),
		service.MustResolve[ads.Service](c),
		env.Log,
	)
	if err := service.Register[ui.Factory](c, uiFactory); err != nil {
		return err
	}
	if err := service.Register[ui.WindowService](c, ui.NewWindowService(service.MustResolve[ui.Factory](c))); err != nil {
		return err
	}

	game := factory.New(factory.Deps{
		Container: c,
		Loop:      env.Loop,
		Static:    service.MustResolve[staticdata.Service](c),
		Input:     service.MustResolve[input.Service](c),
		Random:    service.MustResolve[random.Service](c),
		Progress:  service.MustResolve[*progress.Service](c),
		Windows:   service.MustResolve[ui.WindowService](c),
		Log:       env.Log,
	})
	if err := service.Register[factory.GameFactory](c, game); err != nil {
		return err
	}

	codec, err := saveload.NewCodec(cfg.Storage.Codec)
	if err != nil {
		return err
	}
	pipeline := saveload.NewPipeline(
		service.MustResolve[*progress.Service](c),
		service.MustResolve[factory.GameFactory](c),
		service.MustResolve[storage.Store](c),
		codec,
		env.Log,
		env.Metrics,
	)
	return service.Register[saveload.Service](c, pipeline)
}

func (s *BootstrapState) registerIAP() error {
	c := s.container
	env := s.env

	catalog, err := iap.LoadCatalog(service.MustResolve[assets.Provider](c))
	if err != nil {
		env.Log.Warn("Product catalog unavailable", zap.Error(err))
		catalog = iap.EmptyCatalog()
	}

	platform := env.IAPPlatform
	if platform == nil {
		platform = iap.NewOffline(env.Config.Platform.Latency)
	}
	provider := iap.NewProvider(platform, catalog, env.Loop.Dispatcher(), env.Config.Platform.IAPEnvironment, env.Log)
	store := iap.NewService(provider, service.MustResolve[*progress.Service](c), env.Log, env.Metrics)
	if err := store.Initialize(); err != nil {
		env.Log.Warn("In-app purchases unavailable", zap.Error(err))
	}
	return service.Register[iap.Service](c, store)
}
