// Package id generates entity identifiers.
//
// IDs are prefixed ULIDs ("hero_01J..."), so log lines name the entity kind
// and IDs of one kind sort by creation time.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entity prefixes
const (
	HeroPrefix    = "hero"
	MonsterPrefix = "mon"
	LootPrefix    = "loot"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // protects entropy
	now       func() time.Time
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator with monotonic entropy, so IDs made in the
// same millisecond still sort in creation order
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(ulid.Monotonic(rand.Reader, 0))
}

// NewGeneratorWithEntropy creates a generator reading from entropy
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy, now: time.Now}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewHeroID returns a hero ID from the default generator
func NewHeroID() string { return Default().GenerateWithPrefix(HeroPrefix) }

// NewMonsterID returns a monster ID from the default generator
func NewMonsterID() string { return Default().GenerateWithPrefix(MonsterPrefix) }

// NewLootID returns a loot ID from the default generator
func NewLootID() string { return Default().GenerateWithPrefix(LootPrefix) }

// Split separates an ID into its prefix and ULID
func Split(id string) (prefix string, u ulid.ULID, err error) {
	prefix, raw, ok := strings.Cut(id, "_")
	if !ok {
		raw, prefix = prefix, ""
	}
	u, err = ulid.Parse(raw)
	return prefix, u, err
}

// Timestamp extracts the creation time from an ID
func Timestamp(id string) (time.Time, error) {
	_, u, err := Split(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
