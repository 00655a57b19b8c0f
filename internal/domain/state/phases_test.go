package state

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/skullgate/internal/domain/factory"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
	"github.com/GriffinCanCode/skullgate/internal/storage"
)

type harness struct {
	env     *Environment
	machine *Machine
	store   *storage.Memory
	fatal   []error
}

func newHarness(t *testing.T, store storage.Store, configure ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = "memory"
	cfg.Platform.Latency = 0
	for _, fn := range configure {
		fn(cfg)
	}

	h := &harness{}
	if mem, ok := store.(*storage.Memory); ok {
		h.store = mem
	}
	h.env = (&Environment{
		Config:  cfg,
		Metrics: monitoring.NewMetrics(),
		Data:    os.DirFS("../../../data"),
		Store:   store,
		Fatal:   func(err error) { h.fatal = append(h.fatal, err) },
	}).withDefaults()
	h.machine = New(h.env)
	return h
}

// run enters bootstrap and steps frames until the game loop is reached
func (h *harness) run(t *testing.T) {
	t.Helper()
	require.NoError(t, Enter[*BootstrapState](h.machine))
	for i := 0; i < 5 && h.machine.CurrentName() != "GameLoopState"; i++ {
		h.env.Loop.Step(h.env.Loop.Frame())
	}
	require.Empty(t, h.fatal)
	require.Equal(t, "GameLoopState", h.machine.CurrentName())
}

func (h *harness) progress() *progress.PlayerProgress {
	return service.MustResolve[*progress.Service](h.machine.Container()).Progress()
}

func (h *harness) game() *factory.Game {
	return service.MustResolve[factory.GameFactory](h.machine.Container()).(*factory.Game)
}

func seed(t *testing.T, store storage.Store, p *progress.PlayerProgress) {
	t.Helper()
	data, err := saveload.JSONCodec{}.Encode(p)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), saveload.ProgressKey, data))
}

func TestBootstrapRegistersEveryService(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	require.NoError(t, Enter[*BootstrapState](h.machine))

	assert.Equal(t, "BootstrapState", h.machine.CurrentName())
	assert.ElementsMatch(t, []string{
		"*state.Machine",
		"assets.Provider",
		"staticdata.Service",
		"ads.Service",
		"input.Service",
		"random.Service",
		"*progress.Service",
		"storage.Store",
		"iap.Service",
		"ui.Factory",
		"ui.WindowService",
		"factory.GameFactory",
		"saveload.Service",
	}, h.machine.Container().Handles())
	assert.Same(t, h.machine, service.MustResolve[*Machine](h.machine.Container()))
}

func TestBootstrapWaitsForInitialScene(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	require.NoError(t, Enter[*BootstrapState](h.machine))
	assert.Empty(t, h.env.Scenes.Current())

	h.env.Loop.Step(0)
	assert.Equal(t, "LoadLevelState", h.machine.CurrentName())
	assert.True(t, h.env.Curtain.Visible())
}

func TestBootstrapFailsWithoutStaticData(t *testing.T) {
	m := New(&Environment{Data: fstest.MapFS{}, Store: storage.NewMemory()})

	err := Enter[*BootstrapState](m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register services")
}

func TestNewGameReachesGameLoop(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	h.run(t)

	p := h.progress()
	assert.Equal(t, InitialLevel, p.WorldData.PositionOnLevel.Level)
	assert.Equal(t, float64(InitialMaxHP), p.HeroState.MaxHP)
	assert.Equal(t, float64(InitialMaxHP), p.HeroState.CurrentHP)
	assert.Equal(t, float64(InitialDamage), p.HeroStats.Damage)
	assert.Equal(t, InitialDamageRadius, p.HeroStats.DamageRadius)

	assert.Equal(t, "Main", h.env.Scenes.Current())
	game := h.game()
	require.NotNil(t, game.Hero())
	assert.Len(t, game.Monsters(), 3)
	assert.Len(t, game.Triggers(), 1)
	assert.Equal(t, float64(InitialMaxHP), game.Hero().Health.Current())
	assert.Zero(t, h.store.Writes(), "starting a game does not save")
}

func TestNewProgressDefaults(t *testing.T) {
	p := NewProgress()
	require.NoError(t, p.Validate())
	assert.Equal(t, "Main", p.WorldData.PositionOnLevel.Level)
	assert.Equal(t, 50.0, p.HeroState.CurrentHP)
	assert.Equal(t, 1.0, p.HeroStats.Damage)
	assert.Equal(t, 0.5, p.HeroStats.DamageRadius)
}

func TestSavedProgressIsRestored(t *testing.T) {
	store := storage.NewMemory()
	saved := NewProgress()
	saved.WorldData.PositionOnLevel = progress.PositionOnLevel{
		Level:    "Dungeon",
		Position: &types.Vector3{X: 4, Z: 2},
	}
	saved.WorldData.LootData.Collected = 7
	saved.HeroState.CurrentHP = 30
	saved.KillData.MarkCleared("dungeon-golem-hall")
	seed(t, store, saved)

	h := newHarness(t, store)
	h.run(t)

	assert.Equal(t, "Dungeon", h.env.Scenes.Current())
	p := h.progress()
	assert.Equal(t, 7, p.WorldData.LootData.Collected)

	game := h.game()
	assert.Empty(t, game.Monsters(), "cleared spawner stays empty")
	assert.Equal(t, 30.0, game.Hero().Health.Current())
	assert.Equal(t, types.Vector3{X: 4, Z: 2}, game.Hero().Position())
}

func TestCorruptSaveStartsFresh(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(context.Background(), saveload.ProgressKey, []byte("{not json")))

	h := newHarness(t, store)
	h.run(t)

	assert.Equal(t, InitialLevel, h.progress().WorldData.PositionOnLevel.Level)
}

type unreadableStore struct {
	*storage.Memory
}

func (unreadableStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestBackendFailureStartsFresh(t *testing.T) {
	h := newHarness(t, unreadableStore{storage.NewMemory()})
	h.run(t)

	assert.Equal(t, InitialLevel, h.progress().WorldData.PositionOnLevel.Level)
}

func TestUnknownSavedLevelIsFatal(t *testing.T) {
	store := storage.NewMemory()
	saved := NewProgress()
	saved.WorldData.PositionOnLevel.Level = "Nowhere"
	seed(t, store, saved)

	h := newHarness(t, store)
	require.NoError(t, Enter[*BootstrapState](h.machine))
	h.env.Loop.Step(0)
	h.env.Loop.Step(0)

	require.Len(t, h.fatal, 1)
	assert.Contains(t, h.fatal[0].Error(), "Nowhere")
	assert.Equal(t, "LoadLevelState", h.machine.CurrentName())
}

func TestLoadLevelExposesPayload(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	require.NoError(t, Enter[*BootstrapState](h.machine))
	h.env.Loop.Step(0)

	current, ok := h.machine.Current().(*LoadLevelState)
	require.True(t, ok)
	assert.Equal(t, "Main", current.Level())
}

func TestCurtainFadesAfterLevelLoads(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	h.run(t)

	h.env.Loop.Step(600 * time.Millisecond)
	assert.False(t, h.env.Curtain.Visible())
}

func TestGameLoopAutosaves(t *testing.T) {
	h := newHarness(t, storage.NewMemory(), func(cfg *config.Config) {
		cfg.Game.AutosaveInterval = time.Millisecond
	})
	h.run(t)

	current := h.machine.Current().(*GameLoopState)
	require.NotNil(t, current.Autosaver())

	time.Sleep(10 * time.Millisecond)
	h.env.Loop.Step(0)
	assert.Equal(t, 1, h.store.Writes())

	tickers := h.env.Loop.Len()
	current.Exit()
	assert.Equal(t, tickers-1, h.env.Loop.Len())
}

func TestGameLoopWithoutAutosave(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	h.run(t)

	current := h.machine.Current().(*GameLoopState)
	assert.Nil(t, current.Autosaver())
	current.Exit()
}

func TestSaveAfterPlayUsesFactoryWriters(t *testing.T) {
	h := newHarness(t, storage.NewMemory())
	h.run(t)

	h.game().Hero().Move.Warp(types.Vector3{X: -2})
	sl := service.MustResolve[saveload.Service](h.machine.Container())
	require.NoError(t, sl.SaveProgress(context.Background()))

	loaded, err := sl.LoadProgress(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded.WorldData.PositionOnLevel.Position)
	assert.Equal(t, types.Vector3{X: -2}, *loaded.WorldData.PositionOnLevel.Position)
}
