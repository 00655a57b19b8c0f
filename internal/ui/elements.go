package ui

import (
	"strconv"

	"github.com/GriffinCanCode/skullgate/internal/domain/logic"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
)

// HpBar shows a health fraction
type HpBar struct {
	fill float64
}

// SetValue sets the bar to current/total
func (b *HpBar) SetValue(current, total float64) {
	if total <= 0 {
		b.fill = 0
		return
	}
	b.fill = min(1, max(0, current)/total)
}

// Fill returns the shown fraction in [0, 1]
func (b *HpBar) Fill() float64 { return b.fill }

// ActorUI binds an HpBar to a health source
type ActorUI struct {
	Bar    HpBar
	health logic.Health
	unsub  func()
}

// NewActorUI creates a bar tracking health
func NewActorUI(health logic.Health) *ActorUI {
	a := &ActorUI{}
	a.Construct(health)
	return a
}

// Construct switches the bar to health
func (a *ActorUI) Construct(health logic.Health) {
	a.Close()
	a.health = health
	a.unsub = health.OnHealthChanged(a.update)
	a.update()
}

func (a *ActorUI) update() {
	a.Bar.SetValue(a.health.Current(), a.health.Max())
}

// Close stops tracking
func (a *ActorUI) Close() {
	if a.unsub != nil {
		a.unsub()
		a.unsub = nil
	}
}

// LootCounter shows the collected loot total
type LootCounter struct {
	world *progress.WorldData
	text  string
	unsub func()
}

// NewLootCounter creates a counter bound to world
func NewLootCounter(world *progress.WorldData) *LootCounter {
	c := &LootCounter{}
	c.Construct(world)
	return c
}

// Construct binds the counter to world's loot
func (c *LootCounter) Construct(world *progress.WorldData) {
	c.Close()
	c.world = world
	c.unsub = world.LootData.Subscribe(c.update)
	c.update()
}

func (c *LootCounter) update() {
	c.text = strconv.Itoa(c.world.LootData.Collected)
}

// Text returns what the counter displays
func (c *LootCounter) Text() string { return c.text }

// Close stops tracking
func (c *LootCounter) Close() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}

// OpenWindowButton opens a window when clicked
type OpenWindowButton struct {
	Window  WindowID
	windows WindowService
}

// NewOpenWindowButton creates a button for id
func NewOpenWindowButton(id WindowID, windows WindowService) *OpenWindowButton {
	return &OpenWindowButton{Window: id, windows: windows}
}

// Click opens the window
func (b *OpenWindowButton) Click() error {
	_, err := b.windows.Open(b.Window)
	return err
}

// Hud is the in-level overlay
type Hud struct {
	HeroBar    *ActorUI
	Loot       *LootCounter
	ShopButton *OpenWindowButton
}

// NewHud builds the overlay for the hero and the current world data
func NewHud(hero logic.Health, world *progress.WorldData, windows WindowService) *Hud {
	return &Hud{
		HeroBar:    NewActorUI(hero),
		Loot:       NewLootCounter(world),
		ShopButton: NewOpenWindowButton(WindowShop, windows),
	}
}

// Close detaches every element
func (h *Hud) Close() {
	h.HeroBar.Close()
	h.Loot.Close()
}
