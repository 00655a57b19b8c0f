package staticdata

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/skullgate/internal/providers/assets"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

const (
	MonstersPath = "monsters.toml"
	LevelsPath   = "levels.toml"
	WindowsPath  = "windows.toml"
)

var ErrNotFound = errors.New("static data not found")

// MonsterData tunes one monster type
type MonsterData struct {
	ID                string  `toml:"id"`
	HP                float64 `toml:"hp"`
	Damage            float64 `toml:"damage"`
	MoveSpeed         float64 `toml:"move_speed"`
	EffectiveDistance float64 `toml:"effective_distance"`
	Cleavage          float64 `toml:"cleavage"`
	AttackCooldown    float64 `toml:"attack_cooldown"`
	MinLoot           int     `toml:"min_loot"`
	MaxLoot           int     `toml:"max_loot"`
}

// SpawnerData places one monster spawn point on a level
type SpawnerData struct {
	ID       string        `toml:"id"`
	Monster  string        `toml:"monster"`
	Position types.Vector3 `toml:"position"`
}

// SaveTriggerData places a box that saves progress when the hero walks in
type SaveTriggerData struct {
	ID       string        `toml:"id"`
	Position types.Vector3 `toml:"position"`
	Size     types.Vector3 `toml:"size"`
}

// LevelData describes what the world builder places on a level
type LevelData struct {
	Name                string            `toml:"name"`
	InitialHeroPosition types.Vector3     `toml:"initial_hero_position"`
	Spawners            []SpawnerData     `toml:"spawners"`
	SaveTriggers        []SaveTriggerData `toml:"save_triggers"`
}

// WindowConfig binds a window id to its title and layout asset
type WindowConfig struct {
	ID     string `toml:"id"`
	Title  string `toml:"title"`
	Layout string `toml:"layout"`
}

// Service answers static data lookups
type Service interface {
	Monster(id string) (MonsterData, error)
	Level(name string) (LevelData, error)
	Window(id string) (WindowConfig, error)
}

// Catalog holds every static data table in memory
type Catalog struct {
	monsters map[string]MonsterData
	levels   map[string]LevelData
	windows  map[string]WindowConfig
}

var _ Service = (*Catalog)(nil)

type monstersFile struct {
	Monsters []MonsterData `toml:"monsters"`
}

type levelsFile struct {
	Levels []LevelData `toml:"levels"`
}

type windowsFile struct {
	Windows []WindowConfig `toml:"windows"`
}

// Load reads all tables from the data directory
func Load(provider assets.Provider) (*Catalog, error) {
	var (
		monsters monstersFile
		levels   levelsFile
		windows  windowsFile
	)
	for _, f := range []struct {
		path string
		dst  any
	}{
		{MonstersPath, &monsters},
		{LevelsPath, &levels},
		{WindowsPath, &windows},
	} {
		data, err := provider.Read(f.path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.path, err)
		}
	}
	return build(monsters.Monsters, levels.Levels, windows.Windows)
}

func build(monsters []MonsterData, levels []LevelData, windows []WindowConfig) (*Catalog, error) {
	c := &Catalog{
		monsters: make(map[string]MonsterData, len(monsters)),
		levels:   make(map[string]LevelData, len(levels)),
		windows:  make(map[string]WindowConfig, len(windows)),
	}

	for _, m := range monsters {
		if m.ID == "" {
			return nil, fmt.Errorf("%s: monster without id", MonstersPath)
		}
		if m.MaxLoot < m.MinLoot {
			return nil, fmt.Errorf("%s: monster %s: max_loot below min_loot", MonstersPath, m.ID)
		}
		c.monsters[m.ID] = m
	}

	for _, l := range levels {
		if l.Name == "" {
			return nil, fmt.Errorf("%s: level without name", LevelsPath)
		}
		seen := make(map[string]bool, len(l.Spawners))
		for _, s := range l.Spawners {
			if s.ID == "" || seen[s.ID] {
				return nil, fmt.Errorf("%s: level %s: missing or duplicate spawner id %q", LevelsPath, l.Name, s.ID)
			}
			seen[s.ID] = true
			if _, ok := c.monsters[s.Monster]; !ok {
				return nil, fmt.Errorf("%s: level %s: spawner %s: unknown monster %q", LevelsPath, l.Name, s.ID, s.Monster)
			}
		}
		c.levels[l.Name] = l
	}

	for _, w := range windows {
		if w.ID == "" {
			return nil, fmt.Errorf("%s: window without id", WindowsPath)
		}
		c.windows[w.ID] = w
	}
	return c, nil
}

func (c *Catalog) Monster(id string) (MonsterData, error) {
	m, ok := c.monsters[id]
	if !ok {
		return MonsterData{}, fmt.Errorf("%w: monster %q", ErrNotFound, id)
	}
	return m, nil
}

func (c *Catalog) Level(name string) (LevelData, error) {
	l, ok := c.levels[name]
	if !ok {
		return LevelData{}, fmt.Errorf("%w: level %q", ErrNotFound, name)
	}
	return l, nil
}

func (c *Catalog) Window(id string) (WindowConfig, error) {
	w, ok := c.windows[id]
	if !ok {
		return WindowConfig{}, fmt.Errorf("%w: window %q", ErrNotFound, id)
	}
	return w, nil
}
