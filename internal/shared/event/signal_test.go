package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalOrderAndUnsubscribe(t *testing.T) {
	var s Signal
	var calls []string

	s.Subscribe(func() { calls = append(calls, "a") })
	unsubscribeB := s.Subscribe(func() { calls = append(calls, "b") })
	s.Subscribe(func() { calls = append(calls, "c") })

	s.Emit()
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	unsubscribeB()
	unsubscribeB()
	calls = nil
	s.Emit()
	assert.Equal(t, []string{"a", "c"}, calls)
	assert.Equal(t, 2, s.Len())
}

func TestSignalUnsubscribeDuringEmit(t *testing.T) {
	var s Signal
	count := 0

	var unsubscribe func()
	unsubscribe = s.Subscribe(func() {
		count++
		unsubscribe()
	})

	s.Emit()
	s.Emit()
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, s.Len())
}

func TestOnce(t *testing.T) {
	var o Once
	count := 0

	o.Subscribe(func() { count++ })
	o.Fire()
	o.Fire()
	assert.Equal(t, 1, count)
	assert.True(t, o.Fired())

	// Late subscribers run immediately
	o.Subscribe(func() { count++ })
	assert.Equal(t, 2, count)
}
