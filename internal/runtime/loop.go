package runtime

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
)

// Ticker receives one call per frame
type Ticker interface {
	Tick(dt time.Duration)
}

// TickerFunc adapts a function to Ticker
type TickerFunc func(dt time.Duration)

func (f TickerFunc) Tick(dt time.Duration) { f(dt) }

type tickerEntry struct {
	ticker  Ticker
	removed bool
}

// Loop drives the game at a fixed frame rate on a single goroutine.
// Each frame drains the dispatcher first, then ticks every registered ticker
// in registration order.
type Loop struct {
	frame      time.Duration
	dispatcher *Dispatcher
	log        *zap.Logger
	metrics    *monitoring.Metrics

	tickers []*tickerEntry
	frames  atomic.Uint64
}

// NewLoop creates a loop. A zero frame duration defaults to 60 frames per second.
func NewLoop(frame time.Duration, dispatcher *Dispatcher, log *zap.Logger, metrics *monitoring.Metrics) *Loop {
	if frame <= 0 {
		frame = time.Second / 60
	}
	if dispatcher == nil {
		dispatcher = NewDispatcher()
	}
	return &Loop{
		frame:      frame,
		dispatcher: dispatcher,
		log:        logging.OrNop(log),
		metrics:    metrics,
	}
}

// Dispatcher returns the queue drained at the start of every frame
func (l *Loop) Dispatcher() *Dispatcher { return l.dispatcher }

// Frame returns the target frame duration
func (l *Loop) Frame() time.Duration { return l.frame }

// Frames returns how many frames have completed. Safe from any goroutine.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Add registers t and returns a function that removes it. Tickers added
// during a frame start ticking on the next frame.
func (l *Loop) Add(t Ticker) (remove func()) {
	entry := &tickerEntry{ticker: t}
	l.tickers = append(l.tickers, entry)

	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, e := range l.tickers {
			if e == entry {
				l.tickers = append(l.tickers[:i:i], l.tickers[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered tickers
func (l *Loop) Len() int { return len(l.tickers) }

// Step runs a single frame
func (l *Loop) Step(dt time.Duration) {
	start := time.Now()

	l.dispatcher.Drain()

	snapshot := append([]*tickerEntry(nil), l.tickers...)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.ticker.Tick(dt)
	}

	l.frames.Add(1)
	l.metrics.RecordFrame(time.Since(start))
}

// Run steps the loop until ctx is canceled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frame)
	defer ticker.Stop()

	l.log.Info("Frame loop started", zap.Duration("frame", l.frame))
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("Frame loop stopped", zap.Uint64("frames", l.Frames()))
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.Step(dt)
		}
	}
}
