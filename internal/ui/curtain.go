package ui

import "time"

// FadeDuration is how long the curtain takes to fade out
const FadeDuration = 500 * time.Millisecond

// Curtain covers the screen while a level loads
type Curtain struct {
	alpha  float64
	fading bool
}

// NewCurtain creates a hidden curtain
func NewCurtain() *Curtain { return &Curtain{} }

// Show covers the screen immediately
func (c *Curtain) Show() {
	c.alpha = 1
	c.fading = false
}

// Hide starts fading the curtain out
func (c *Curtain) Hide() {
	if c.alpha > 0 {
		c.fading = true
	}
}

// Visible reports whether any part of the curtain is still drawn
func (c *Curtain) Visible() bool { return c.alpha > 0 }

func (c *Curtain) Alpha() float64 { return c.alpha }

func (c *Curtain) Tick(dt time.Duration) {
	if !c.fading {
		return
	}
	c.alpha -= float64(dt) / float64(FadeDuration)
	if c.alpha <= 0 {
		c.alpha = 0
		c.fading = false
	}
}
