// Package event provides subscription lists owned by the emitting component.
package event

// Signal is an ordered list of callbacks. The zero value is ready to use.
// It is not safe for concurrent use; emitters live on the frame goroutine.
type Signal struct {
	nextID   int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

// Subscribe adds fn and returns a func that removes it again.
// Calling the returned func more than once is a no-op.
func (s *Signal) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler{id: id, fn: fn})
	return func() { s.remove(id) }
}

// Emit calls every subscriber in subscription order.
// Subscribers added or removed during Emit take effect on the next Emit.
func (s *Signal) Emit() {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := make([]handler, len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		h.fn()
	}
}

// Len returns the number of live subscribers
func (s *Signal) Len() int {
	return len(s.handlers)
}

// Clear drops every subscriber
func (s *Signal) Clear() {
	s.handlers = nil
}

func (s *Signal) remove(id int) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Once is a one-shot notification. Subscribers added after it fired are
// called immediately.
type Once struct {
	fired  bool
	signal Signal
}

// Subscribe registers fn for the notification
func (o *Once) Subscribe(fn func()) (unsubscribe func()) {
	if o.fired {
		if fn != nil {
			fn()
		}
		return func() {}
	}
	return o.signal.Subscribe(fn)
}

// Fire notifies subscribers. Only the first call has an effect.
func (o *Once) Fire() {
	if o.fired {
		return
	}
	o.fired = true
	o.signal.Emit()
	o.signal.Clear()
}

// Fired reports whether Fire has been called
func (o *Once) Fired() bool {
	return o.fired
}
