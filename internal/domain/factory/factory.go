package factory

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/enemy"
	"github.com/GriffinCanCode/skullgate/internal/domain/hero"
	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/providers/random"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
	"github.com/GriffinCanCode/skullgate/internal/shared/id"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
	"github.com/GriffinCanCode/skullgate/internal/ui"
)

// HitRadius is the size of a monster's hittable body
const HitRadius = 0.5

var (
	ErrHeroExists = errors.New("hero already created")
	ErrNoHero     = errors.New("hero not created")
	ErrNoProgress = errors.New("progress not loaded")
)

// GameFactory builds level entities and tracks which of them take part in
// saving and loading
type GameFactory interface {
	CreateHero(at types.Vector3) (*hero.Hero, error)
	CreateHud() (*ui.Hud, error)
	CreateSpawner(data staticdata.SpawnerData) (*enemy.Spawner, error)
	CreateMonster(monsterID string, at types.Vector3) (*enemy.Monster, error)
	CreateLoot(at types.Vector3, value int) *enemy.Loot
	CreateSaveTrigger(data staticdata.SaveTriggerData) (*logic.SaveTrigger, error)

	Hero() *hero.Hero
	HeroPosition() (types.Vector3, bool)
	OnHeroCreated(fn func()) (unsubscribe func())
	OverlapSphere(center types.Vector3, radius float64, max int) []logic.Health

	ProgressReaders() []progress.Reader
	ProgressWriters() []progress.Writer
	Cleanup()
}

// Deps are the services a factory builds entities from
type Deps struct {
	Container *service.Container
	Loop      *runtime.Loop
	Static    staticdata.Service
	Input     input.Service
	Random    random.Service
	Progress  *progress.Service
	Windows   ui.WindowService
	Log       *zap.Logger
}

// Game is the default GameFactory. Entities it creates tick on the frame
// loop until Cleanup.
type Game struct {
	deps Deps
	log  *zap.Logger

	hero        *hero.Hero
	heroCreated event.Once
	monsters    []*enemy.Monster
	loot        []*enemy.Loot
	triggers    []*logic.SaveTrigger
	hud         *ui.Hud
	widgets     []*ui.ActorUI

	readers  []progress.Reader
	writers  []progress.Writer
	removers []func()
}

var (
	_ GameFactory           = (*Game)(nil)
	_ saveload.WriterSource = (*Game)(nil)
	_ enemy.MonsterFactory  = (*Game)(nil)
	_ enemy.LootFactory     = (*Game)(nil)
	_ enemy.HeroLocator     = (*Game)(nil)
	_ hero.Overlap          = (*Game)(nil)
)

// New creates an empty factory
func New(deps Deps) *Game {
	return &Game{deps: deps, log: logging.OrNop(deps.Log)}
}

func (g *Game) CreateHero(at types.Vector3) (*hero.Hero, error) {
	if g.hero != nil {
		return nil, ErrHeroExists
	}
	level := ""
	if p := g.deps.Progress.Progress(); p != nil {
		level = p.WorldData.PositionOnLevel.Level
	}

	move := hero.NewMove(g.deps.Input, hero.Speed, level, at)
	h := &hero.Hero{
		ID:     id.NewHeroID(),
		Health: &hero.Health{},
		Move:   move,
		Attack: hero.NewAttack(g.deps.Input, g, move),
	}
	g.register(h.Health)
	g.register(h.Move)
	g.register(h.Attack)
	g.tick(h.Move)
	g.tick(h.Attack)

	g.hero = h
	g.log.Debug("Hero created", zap.String("id", h.ID), zap.String("level", level))
	g.heroCreated.Fire()
	return h, nil
}

func (g *Game) CreateHud() (*ui.Hud, error) {
	if g.hero == nil {
		return nil, ErrNoHero
	}
	p := g.deps.Progress.Progress()
	if p == nil {
		return nil, ErrNoProgress
	}
	g.hud = ui.NewHud(g.hero.Health, p.WorldData, g.deps.Windows)
	return g.hud, nil
}

func (g *Game) CreateSpawner(data staticdata.SpawnerData) (*enemy.Spawner, error) {
	if data.ID == "" {
		return nil, fmt.Errorf("spawner without id")
	}
	s := enemy.NewSpawner(data.ID, data.Monster, data.Position, g, g.log)
	g.register(s)
	return s, nil
}

func (g *Game) CreateMonster(monsterID string, at types.Vector3) (*enemy.Monster, error) {
	data, err := g.deps.Static.Monster(monsterID)
	if err != nil {
		return nil, err
	}
	m := enemy.NewMonster(id.NewMonsterID(), monsterID, data.HP, at, enemy.Parts{
		Heroes:    g,
		Loot:      g,
		Random:    g.deps.Random,
		MoveSpeed: data.MoveSpeed,
		MinLoot:   data.MinLoot,
		MaxLoot:   data.MaxLoot,
	})
	g.tick(m.Move)
	g.widgets = append(g.widgets, ui.NewActorUI(m.Health))
	g.monsters = append(g.monsters, m)
	return m, nil
}

func (g *Game) CreateLoot(at types.Vector3, value int) *enemy.Loot {
	l := enemy.NewLoot(id.NewLootID(), value, at, g, g.deps.Progress)
	g.tick(l)
	g.loot = append(g.loot, l)
	return l
}

// CreateSaveTrigger resolves the save pipeline when called, since the
// pipeline itself depends on this factory
func (g *Game) CreateSaveTrigger(data staticdata.SaveTriggerData) (*logic.SaveTrigger, error) {
	if g.hero == nil {
		return nil, ErrNoHero
	}
	saver, err := service.Resolve[saveload.Service](g.deps.Container)
	if err != nil {
		return nil, fmt.Errorf("save trigger %s: %w", data.ID, err)
	}
	t := logic.NewSaveTrigger(data.ID, data.Position, data.Size, saver, g.hero, g.log)
	g.tick(t)
	g.triggers = append(g.triggers, t)
	return t, nil
}

func (g *Game) Hero() *hero.Hero { return g.hero }

func (g *Game) HeroPosition() (types.Vector3, bool) {
	if g.hero == nil {
		return types.Vector3{}, false
	}
	return g.hero.Position(), true
}

// OnHeroCreated runs fn when the hero of the current level is created, or
// immediately if it already exists
func (g *Game) OnHeroCreated(fn func()) (unsubscribe func()) {
	return g.heroCreated.Subscribe(fn)
}

// Monsters returns the monsters created since the last Cleanup
func (g *Game) Monsters() []*enemy.Monster {
	return append([]*enemy.Monster(nil), g.monsters...)
}

// Loot returns the loot dropped since the last Cleanup
func (g *Game) Loot() []*enemy.Loot {
	return append([]*enemy.Loot(nil), g.loot...)
}

// Triggers returns the save triggers of the current level
func (g *Game) Triggers() []*logic.SaveTrigger {
	return append([]*logic.SaveTrigger(nil), g.triggers...)
}

// OverlapSphere returns the health of living monsters touching the sphere,
// nearest first
func (g *Game) OverlapSphere(center types.Vector3, radius float64, max int) []logic.Health {
	type hit struct {
		health   logic.Health
		distance float64
	}
	var hits []hit
	for _, m := range g.monsters {
		if m.Death.Dead() {
			continue
		}
		d := types.Distance(center, m.Position())
		if d <= radius+HitRadius {
			hits = append(hits, hit{health: m.Health, distance: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	if max > 0 && len(hits) > max {
		hits = hits[:max]
	}
	out := make([]logic.Health, len(hits))
	for i, h := range hits {
		out[i] = h.health
	}
	return out
}

// ProgressReaders returns a snapshot of every registered reader, writers included
func (g *Game) ProgressReaders() []progress.Reader {
	return append([]progress.Reader(nil), g.readers...)
}

// ProgressWriters returns a snapshot of the registered writers
func (g *Game) ProgressWriters() []progress.Writer {
	return append([]progress.Writer(nil), g.writers...)
}

// Cleanup stops every entity and forgets all readers and writers
func (g *Game) Cleanup() {
	for _, remove := range g.removers {
		remove()
	}
	for _, w := range g.widgets {
		w.Close()
	}
	for _, m := range g.monsters {
		m.Move.Stop()
	}
	if g.hud != nil {
		g.hud.Close()
	}

	g.removers = nil
	g.widgets = nil
	g.monsters = nil
	g.loot = nil
	g.triggers = nil
	g.readers = nil
	g.writers = nil
	g.hud = nil
	g.hero = nil
	g.heroCreated = event.Once{}
}

func (g *Game) register(reader progress.Reader) {
	if w, ok := reader.(progress.Writer); ok {
		g.writers = append(g.writers, w)
	}
	g.readers = append(g.readers, reader)
}

func (g *Game) tick(t runtime.Ticker) {
	g.removers = append(g.removers, g.deps.Loop.Add(t))
}
