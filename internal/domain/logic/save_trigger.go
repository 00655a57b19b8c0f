package logic

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

// Saver persists the current progress
type Saver interface {
	SaveProgress(ctx context.Context) error
}

// SaveTrigger saves once when its target walks into the box, then deactivates
type SaveTrigger struct {
	ID     string
	Center types.Vector3
	Size   types.Vector3

	saver  Saver
	target Positioned
	log    *zap.Logger
	active bool
}

// NewSaveTrigger creates an active trigger watching target
func NewSaveTrigger(id string, center, size types.Vector3, saver Saver, target Positioned, log *zap.Logger) *SaveTrigger {
	return &SaveTrigger{
		ID:     id,
		Center: center,
		Size:   size,
		saver:  saver,
		target: target,
		log:    logging.OrNop(log),
		active: true,
	}
}

// Active reports whether the trigger can still fire
func (t *SaveTrigger) Active() bool { return t.active }

// Contains reports whether p is inside the trigger box
func (t *SaveTrigger) Contains(p types.Vector3) bool {
	d := p.Sub(t.Center)
	return math.Abs(d.X) <= t.Size.X/2 &&
		math.Abs(d.Y) <= t.Size.Y/2 &&
		math.Abs(d.Z) <= t.Size.Z/2
}

func (t *SaveTrigger) Tick(time.Duration) {
	if !t.active || t.target == nil {
		return
	}
	if t.Contains(t.target.Position()) {
		t.Enter(context.Background())
	}
}

// Enter saves progress and deactivates the trigger
func (t *SaveTrigger) Enter(ctx context.Context) {
	if !t.active {
		return
	}
	t.active = false

	if err := t.saver.SaveProgress(ctx); err != nil {
		t.log.Error("Save trigger failed", zap.String("trigger", t.ID), zap.Error(err))
		return
	}
	t.log.Info("Progress saved", zap.String("trigger", t.ID))
}
