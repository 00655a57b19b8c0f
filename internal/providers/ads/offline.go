package ads

import (
	"errors"
	"sync"
	"time"
)

// Offline simulates an ads SDK: a video becomes ready after latency and
// every show is watched to the end.
type Offline struct {
	latency time.Duration

	mu       sync.Mutex
	listener Listener
	ready    map[string]bool
	showing  bool
}

// NewOffline creates an offline ads platform
func NewOffline(latency time.Duration) *Offline {
	return &Offline{latency: latency, ready: make(map[string]bool)}
}

func (o *Offline) Initialize(gameID string, listener Listener) error {
	if listener == nil {
		return errors.New("listener is required")
	}
	o.mu.Lock()
	o.listener = listener
	o.mu.Unlock()

	o.prepare(RewardedVideoPlacement)
	return nil
}

func (o *Offline) prepare(placement string) {
	time.AfterFunc(o.latency, func() {
		o.mu.Lock()
		o.ready[placement] = true
		l := o.listener
		o.mu.Unlock()
		l.OnReady(placement)
	})
}

func (o *Offline) IsReady(placement string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ready[placement] && !o.showing
}

func (o *Offline) Show(placement string) error {
	o.mu.Lock()
	if !o.ready[placement] || o.showing {
		o.mu.Unlock()
		return ErrNotReady
	}
	o.showing = true
	o.ready[placement] = false
	l := o.listener
	o.mu.Unlock()

	go l.OnStart(placement)
	time.AfterFunc(o.latency, func() {
		o.mu.Lock()
		o.showing = false
		o.mu.Unlock()
		l.OnFinished(placement, ShowFinished)
		o.prepare(placement)
	})
	return nil
}
