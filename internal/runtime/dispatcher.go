package runtime

import (
	"context"
	"errors"
	"sync"
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

// Dispatcher carries work from other goroutines onto the frame goroutine.
// Post is safe from any goroutine; Drain must only run on the frame goroutine.
type Dispatcher struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Post queues fn for the next Drain. Posts after Close are dropped.
func (d *Dispatcher) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.queue = append(d.queue, fn)
	return true
}

// Drain runs everything queued so far in post order and returns the count.
// Work posted while draining waits for the next Drain.
func (d *Dispatcher) Drain() int {
	d.mu.Lock()
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending reports how many functions are waiting
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Close stops accepting work. Queued work is discarded.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.queue = nil
}

type reply[T any] struct {
	value T
	err   error
}

// Call runs fn on the frame goroutine and waits for its result. It returns
// early with ctx's error if the frame goroutine does not get to it in time.
func Call[T any](ctx context.Context, d *Dispatcher, fn func() (T, error)) (T, error) {
	var zero T
	done := make(chan reply[T], 1)

	if !d.Post(func() {
		v, err := fn()
		done <- reply[T]{value: v, err: err}
	}) {
		return zero, ErrDispatcherClosed
	}

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
