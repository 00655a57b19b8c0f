package factory

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/providers/assets"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
	"github.com/GriffinCanCode/skullgate/internal/testutil"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

type fixture struct {
	game      *Game
	loop      *runtime.Loop
	input     *input.Headless
	progress  *progress.Service
	container *service.Container
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	static, err := staticdata.Load(assets.New(fstest.MapFS{
		staticdata.MonstersPath: {Data: []byte("[[monsters]]\nid = \"Lich\"\nhp = 2\nmove_speed = 1\nmin_loot = 3\nmax_loot = 3\n")},
		staticdata.LevelsPath:   {Data: []byte("")},
		staticdata.WindowsPath:  {Data: []byte("[[windows]]\nid = \"shop\"\n")},
	}))
	require.NoError(t, err)

	ps := progress.NewService()
	ps.SetProgress(testutil.Progress("Main"))
	uiFactory := ui.NewFactory(static, ps, testutil.NewMockIAP(t), testutil.NewMockAds(t), nil)

	f := &fixture{
		loop:      runtime.NewLoop(0, nil, nil, nil),
		input:     input.NewHeadless(),
		progress:  ps,
		container: service.NewContainer(),
	}
	f.game = New(Deps{
		Container: f.container,
		Loop:      f.loop,
		Static:    static,
		Input:     f.input,
		Random:    random.New(3),
		Progress:  ps,
		Windows:   ui.NewWindowService(uiFactory),
	})
	return f
}

func TestCreateHeroRegistersReadersAndWriters(t *testing.T) {
	f := newFixture(t)

	notified := 0
	f.game.OnHeroCreated(func() { notified++ })

	h, err := f.game.CreateHero(types.Vector3{X: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, 1, notified)
	assert.Same(t, h, f.game.Hero())

	pos, ok := f.game.HeroPosition()
	assert.True(t, ok)
	assert.Equal(t, types.Vector3{X: 1}, pos)

	assert.Len(t, f.game.ProgressReaders(), 3)
	assert.Len(t, f.game.ProgressWriters(), 2, "attack only reads")
	assert.Equal(t, 2, f.loop.Len())

	_, err = f.game.CreateHero(types.Vector3{})
	assert.ErrorIs(t, err, ErrHeroExists)
}

func TestSnapshotsAreCopies(t *testing.T) {
	f := newFixture(t)
	_, err := f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)

	writers := f.game.ProgressWriters()
	writers[0] = nil
	assert.NotNil(t, f.game.ProgressWriters()[0])
}

func TestSpawnerAndMonster(t *testing.T) {
	f := newFixture(t)
	s, err := f.game.CreateSpawner(staticdata.SpawnerData{ID: "s1", Monster: "Lich", Position: types.Vector3{X: 2}})
	require.NoError(t, err)
	assert.Len(t, f.game.ProgressWriters(), 1)

	s.LoadProgress(f.progress.Progress())
	require.NotNil(t, s.Monster())
	assert.Len(t, f.game.Monsters(), 1)

	_, err = f.game.CreateMonster("Dragon", types.Vector3{})
	assert.ErrorIs(t, err, staticdata.ErrNotFound)
}

func TestHeroAttackKillsMonsterAndCollectsLoot(t *testing.T) {
	f := newFixture(t)
	_, err := f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)
	for _, r := range f.game.ProgressReaders() {
		r.LoadProgress(f.progress.Progress())
	}

	m, err := f.game.CreateMonster("Lich", types.Vector3{Z: 1})
	require.NoError(t, err)

	f.input.PressAttack()
	f.loop.Step(0)
	assert.Equal(t, 1.0, m.Health.Current())

	f.input.PressAttack()
	f.loop.Step(0)
	assert.True(t, m.Death.Dead())
	require.Len(t, f.game.Loot(), 1)

	f.loop.Step(0)
	assert.True(t, f.game.Loot()[0].Picked())
	assert.Equal(t, 3, f.progress.Progress().WorldData.LootData.Collected)
	assert.Empty(t, f.game.OverlapSphere(types.Vector3{Z: 1}, 1, 3), "dead monsters are not hit")
}

func TestOverlapSphereNearestFirst(t *testing.T) {
	f := newFixture(t)
	far, err := f.game.CreateMonster("Lich", types.Vector3{X: 1.2})
	require.NoError(t, err)
	near, err := f.game.CreateMonster("Lich", types.Vector3{X: 0.2})
	require.NoError(t, err)
	_, err = f.game.CreateMonster("Lich", types.Vector3{X: 10})
	require.NoError(t, err)

	hits := f.game.OverlapSphere(types.Vector3{}, 1, 3)
	require.Len(t, hits, 2)
	assert.Same(t, near.Health, hits[0])
	assert.Same(t, far.Health, hits[1])

	assert.Len(t, f.game.OverlapSphere(types.Vector3{}, 1, 1), 1)
}

func TestCreateSaveTriggerResolvesPipeline(t *testing.T) {
	f := newFixture(t)
	data := staticdata.SaveTriggerData{ID: "t1", Position: types.Vector3{X: 5}, Size: types.Vector3{X: 1, Y: 1, Z: 1}}

	_, err := f.game.CreateSaveTrigger(data)
	assert.ErrorIs(t, err, ErrNoHero)

	_, err = f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)
	_, err = f.game.CreateSaveTrigger(data)
	assert.ErrorIs(t, err, service.ErrNotRegistered)

	saver := testutil.NewMockSaveLoad(t)
	require.NoError(t, service.Register[saveload.Service](f.container, saver))
	trigger, err := f.game.CreateSaveTrigger(data)
	require.NoError(t, err)

	f.game.Hero().Move.Warp(types.Vector3{X: 5})
	f.loop.Step(0)
	assert.False(t, trigger.Active())
	saver.AssertNumberOfCalls(t, "SaveProgress", 1)
}

func TestCreateHud(t *testing.T) {
	f := newFixture(t)
	_, err := f.game.CreateHud()
	assert.ErrorIs(t, err, ErrNoHero)

	_, err = f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)
	hud, err := f.game.CreateHud()
	require.NoError(t, err)
	assert.Equal(t, "0", hud.Loot.Text())
}

func TestCleanup(t *testing.T) {
	f := newFixture(t)
	_, err := f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)
	_, err = f.game.CreateMonster("Lich", types.Vector3{X: 4})
	require.NoError(t, err)

	f.game.Cleanup()

	assert.Nil(t, f.game.Hero())
	assert.Empty(t, f.game.ProgressReaders())
	assert.Empty(t, f.game.ProgressWriters())
	assert.Empty(t, f.game.Monsters())
	assert.Equal(t, 0, f.loop.Len())

	notified := 0
	f.game.OnHeroCreated(func() { notified++ })
	assert.Equal(t, 0, notified, "hero notification resets with the level")
	_, err = f.game.CreateHero(types.Vector3{})
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}
