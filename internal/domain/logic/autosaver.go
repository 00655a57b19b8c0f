package logic

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
)

// Autosaver saves progress at most once per interval while ticking
type Autosaver struct {
	saver   Saver
	limiter *rate.Limiter
	now     func() time.Time
	log     *zap.Logger
	saves   int
}

// NewAutosaver creates an autosaver. The first save happens one interval
// after creation.
func NewAutosaver(saver Saver, interval time.Duration, log *zap.Logger) *Autosaver {
	return newAutosaver(saver, interval, log, time.Now)
}

func newAutosaver(saver Saver, interval time.Duration, log *zap.Logger, now func() time.Time) *Autosaver {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.AllowN(now(), 1)

	return &Autosaver{
		saver:   saver,
		limiter: limiter,
		now:     now,
		log:     logging.OrNop(log),
	}
}

// Saves returns how many autosaves ran
func (a *Autosaver) Saves() int { return a.saves }

func (a *Autosaver) Tick(time.Duration) {
	if !a.limiter.AllowN(a.now(), 1) {
		return
	}
	a.saves++
	if err := a.saver.SaveProgress(context.Background()); err != nil {
		a.log.Warn("Autosave failed", zap.Error(err))
		return
	}
	a.log.Debug("Autosaved")
}
