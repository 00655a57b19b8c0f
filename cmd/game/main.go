package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/state"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/server"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/storage"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

func main() {
	dataDir := flag.String("data", "", "Game data directory (overrides GAME_DATA_DIR)")
	debugAddr := flag.String("debug", "", "Debug HTTP address (overrides DEBUG_ADDR)")
	dev := flag.Bool("dev", false, "Development logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault().Fatal("Invalid configuration", zap.Error(err))
	}
	if *dataDir != "" {
		cfg.Game.DataDir = *dataDir
	}
	if *debugAddr != "" {
		cfg.Debug.Addr = *debugAddr
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger := logging.FromConfig(cfg.Logging.Level, cfg.Logging.Development)
	defer logger.Sync()
	log := logger.With(zap.String("session", uuid.NewString()))

	if err := run(cfg, log); err != nil {
		log.Error("Game stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := monitoring.NewMetrics()
	loop := runtime.NewLoop(cfg.Game.FrameDuration(), nil, log, metrics)
	scenes := runtime.NewSceneLoader(log)
	curtain := ui.NewCurtain()
	loop.Add(scenes)
	loop.Add(curtain)

	var fatal error
	machine := state.New(&state.Environment{
		Config:  cfg,
		Log:     log,
		Metrics: metrics,
		Loop:    loop,
		Scenes:  scenes,
		Curtain: curtain,
		Data:    os.DirFS(cfg.Game.DataDir),
		Fatal: func(err error) {
			fatal = err
			stop()
		},
	})

	log.Info("Starting game",
		zap.String("data_dir", cfg.Game.DataDir),
		zap.String("save_backend", cfg.Storage.Backend),
		zap.Int("frame_rate", cfg.Game.FrameRate),
	)
	if err := state.Enter[*state.BootstrapState](machine); err != nil {
		return err
	}
	defer closeStore(machine.Container(), log)

	if cfg.Debug.Addr != "" {
		srv := server.New(cfg.Debug, cfg.Logging.Development, machine, loop.Dispatcher(), metrics, log)
		go func() {
			if err := srv.Run(); err != nil {
				log.Error("Debug server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Close(shutdownCtx)
		}()
	}

	if err := loop.Run(ctx); err != nil {
		return err
	}
	loop.Dispatcher().Close()
	if fatal != nil {
		return fatal
	}

	if cfg.Game.SaveOnExit && machine.CurrentName() == "GameLoopState" {
		saveOnExit(machine.Container(), log)
	}
	log.Info("Shut down gracefully")
	return nil
}

func saveOnExit(c *service.Container, log *zap.Logger) {
	sl, err := service.Resolve[saveload.Service](c)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sl.SaveProgress(ctx); err != nil {
		log.Error("Failed to save on exit", zap.Error(err))
		return
	}
	log.Info("Progress saved on exit")
}

func closeStore(c *service.Container, log *zap.Logger) {
	store, err := service.Resolve[storage.Store](c)
	if err != nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("Failed to close save store", zap.Error(err))
	}
}
