package progress

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/skullgate/internal/shared/event"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

var ErrInvalidProgress = errors.New("invalid progress")

// PlayerProgress is everything that survives a session boundary
type PlayerProgress struct {
	WorldData    *WorldData    `json:"world_data" yaml:"world_data"`
	HeroState    *HeroState    `json:"hero_state" yaml:"hero_state"`
	HeroStats    *HeroStats    `json:"hero_stats" yaml:"hero_stats"`
	KillData     *KillData     `json:"kill_data" yaml:"kill_data"`
	PurchaseData *PurchaseData `json:"purchase_data" yaml:"purchase_data"`
}

// WorldData holds where the hero is and what was collected
type WorldData struct {
	PositionOnLevel PositionOnLevel `json:"position_on_level" yaml:"position_on_level"`
	LootData        *LootData       `json:"loot_data" yaml:"loot_data"`
}

// PositionOnLevel is a level name plus an optional saved position on it
type PositionOnLevel struct {
	Level    string         `json:"level" yaml:"level"`
	Position *types.Vector3 `json:"position,omitempty" yaml:"position,omitempty"`
}

// HeroState holds the hero's mutable vitals
type HeroState struct {
	CurrentHP float64 `json:"current_hp" yaml:"current_hp"`
	MaxHP     float64 `json:"max_hp" yaml:"max_hp"`
}

// ResetHP restores current health to the maximum
func (s *HeroState) ResetHP() {
	s.CurrentHP = s.MaxHP
}

// HeroStats holds the hero's attack parameters
type HeroStats struct {
	Damage       float64 `json:"damage" yaml:"damage"`
	DamageRadius float64 `json:"damage_radius" yaml:"damage_radius"`
}

// KillData records spawners whose monster has been slain
type KillData struct {
	ClearedSpawners []string `json:"cleared_spawners" yaml:"cleared_spawners"`
}

// IsCleared reports whether the spawner id was recorded as cleared
func (k *KillData) IsCleared(spawnerID string) bool {
	for _, id := range k.ClearedSpawners {
		if id == spawnerID {
			return true
		}
	}
	return false
}

// MarkCleared records the spawner id once
func (k *KillData) MarkCleared(spawnerID string) {
	if !k.IsCleared(spawnerID) {
		k.ClearedSpawners = append(k.ClearedSpawners, spawnerID)
	}
}

// LootData counts collected loot; Subscribe to observe changes
type LootData struct {
	Collected int `json:"collected" yaml:"collected"`

	changed event.Signal
}

// Add increases the collected amount and notifies subscribers
func (l *LootData) Add(amount int) {
	l.Collected += amount
	l.changed.Emit()
}

// Subscribe registers fn for loot changes
func (l *LootData) Subscribe(fn func()) (unsubscribe func()) {
	return l.changed.Subscribe(fn)
}

// BoughtIAP counts purchases of one product
type BoughtIAP struct {
	IAPID string `json:"iap_id" yaml:"iap_id"`
	Count int    `json:"count" yaml:"count"`
}

// PurchaseData records completed in-app purchases
type PurchaseData struct {
	BoughtIAPs []BoughtIAP `json:"bought_iaps" yaml:"bought_iaps"`

	changed event.Signal
}

// AddPurchase counts one purchase of id and notifies subscribers
func (p *PurchaseData) AddPurchase(id string) {
	for i := range p.BoughtIAPs {
		if p.BoughtIAPs[i].IAPID == id {
			p.BoughtIAPs[i].Count++
			p.changed.Emit()
			return
		}
	}
	p.BoughtIAPs = append(p.BoughtIAPs, BoughtIAP{IAPID: id, Count: 1})
	p.changed.Emit()
}

// Count returns how many times id was bought
func (p *PurchaseData) Count(id string) int {
	for _, b := range p.BoughtIAPs {
		if b.IAPID == id {
			return b.Count
		}
	}
	return 0
}

// Subscribe registers fn for purchase changes
func (p *PurchaseData) Subscribe(fn func()) (unsubscribe func()) {
	return p.changed.Subscribe(fn)
}

// New builds an empty aggregate positioned on initialLevel
func New(initialLevel string) *PlayerProgress {
	return &PlayerProgress{
		WorldData: &WorldData{
			PositionOnLevel: PositionOnLevel{Level: initialLevel},
			LootData:        &LootData{},
		},
		HeroState:    &HeroState{},
		HeroStats:    &HeroStats{},
		KillData:     &KillData{ClearedSpawners: []string{}},
		PurchaseData: &PurchaseData{BoughtIAPs: []BoughtIAP{}},
	}
}

// Validate reports documents that cannot be played from
func (p *PlayerProgress) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidProgress
	case p.WorldData == nil:
		return fmt.Errorf("%w: missing world data", ErrInvalidProgress)
	case p.WorldData.PositionOnLevel.Level == "":
		return fmt.Errorf("%w: missing level", ErrInvalidProgress)
	case p.HeroState == nil:
		return fmt.Errorf("%w: missing hero state", ErrInvalidProgress)
	case p.HeroStats == nil:
		return fmt.Errorf("%w: missing hero stats", ErrInvalidProgress)
	}
	return nil
}

// Normalize fills optional sections absent from older documents
func (p *PlayerProgress) Normalize() {
	if p.WorldData != nil && p.WorldData.LootData == nil {
		p.WorldData.LootData = &LootData{}
	}
	if p.KillData == nil {
		p.KillData = &KillData{}
	}
	if p.KillData.ClearedSpawners == nil {
		p.KillData.ClearedSpawners = []string{}
	}
	if p.PurchaseData == nil {
		p.PurchaseData = &PurchaseData{}
	}
	if p.PurchaseData.BoughtIAPs == nil {
		p.PurchaseData.BoughtIAPs = []BoughtIAP{}
	}
}
