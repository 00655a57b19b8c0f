package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasAllSections(t *testing.T) {
	p := New("Main")

	require.NoError(t, p.Validate())
	assert.Equal(t, "Main", p.WorldData.PositionOnLevel.Level)
	assert.NotNil(t, p.WorldData.LootData)
	assert.NotNil(t, p.KillData)
	assert.NotNil(t, p.PurchaseData)
}

func TestResetHP(t *testing.T) {
	s := &HeroState{CurrentHP: 3, MaxHP: 50}
	s.ResetHP()
	assert.Equal(t, 50.0, s.CurrentHP)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *PlayerProgress)
	}{
		{"missing world data", func(p *PlayerProgress) { p.WorldData = nil }},
		{"missing level", func(p *PlayerProgress) { p.WorldData.PositionOnLevel.Level = "" }},
		{"missing hero state", func(p *PlayerProgress) { p.HeroState = nil }},
		{"missing hero stats", func(p *PlayerProgress) { p.HeroStats = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("Main")
			tt.mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProgress)
		})
	}

	var nilProgress *PlayerProgress
	assert.ErrorIs(t, nilProgress.Validate(), ErrInvalidProgress)
}

func TestNormalizeFillsOptionalSections(t *testing.T) {
	p := &PlayerProgress{
		WorldData: &WorldData{PositionOnLevel: PositionOnLevel{Level: "Main"}},
		HeroState: &HeroState{},
		HeroStats: &HeroStats{},
	}

	p.Normalize()

	assert.NotNil(t, p.WorldData.LootData)
	assert.Equal(t, []string{}, p.KillData.ClearedSpawners)
	assert.Equal(t, []BoughtIAP{}, p.PurchaseData.BoughtIAPs)
}

func TestLootDataNotifies(t *testing.T) {
	loot := &LootData{}
	notified := 0
	unsubscribe := loot.Subscribe(func() { notified++ })

	loot.Add(3)
	loot.Add(2)
	unsubscribe()
	loot.Add(1)

	assert.Equal(t, 6, loot.Collected)
	assert.Equal(t, 2, notified)
}

func TestPurchaseDataCounts(t *testing.T) {
	data := &PurchaseData{}
	changes := 0
	data.Subscribe(func() { changes++ })

	data.AddPurchase("skulls_small")
	data.AddPurchase("skulls_small")
	data.AddPurchase("skulls_big")

	assert.Equal(t, 2, data.Count("skulls_small"))
	assert.Equal(t, 1, data.Count("skulls_big"))
	assert.Equal(t, 0, data.Count("unknown"))
	assert.Len(t, data.BoughtIAPs, 2)
	assert.Equal(t, 3, changes)
}

func TestKillData(t *testing.T) {
	k := &KillData{}
	k.MarkCleared("spawner-1")
	k.MarkCleared("spawner-1")

	assert.True(t, k.IsCleared("spawner-1"))
	assert.False(t, k.IsCleared("spawner-2"))
	assert.Len(t, k.ClearedSpawners, 1)
}

func TestServiceSharesInstance(t *testing.T) {
	s := NewService()
	assert.Nil(t, s.Progress())

	p := New("Main")
	s.SetProgress(p)
	s.Progress().WorldData.LootData.Add(5)

	assert.Same(t, p, s.Progress())
	assert.Equal(t, 5, p.WorldData.LootData.Collected)
}
