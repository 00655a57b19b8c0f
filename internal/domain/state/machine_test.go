package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/skullgate/internal/service"
)

type journal struct{ events []string }

func (j *journal) add(e string) { j.events = append(j.events, e) }

type firstState struct {
	j       *journal
	onEnter func() error
}

func (s *firstState) Enter() error {
	s.j.add("enter first")
	if s.onEnter != nil {
		return s.onEnter()
	}
	return nil
}

func (s *firstState) Exit() { s.j.add("exit first") }

type secondState struct {
	j     *journal
	label string
}

func (s *secondState) Enter() error {
	s.j.add("enter second " + s.label)
	return nil
}

func (s *secondState) Exit() { s.j.add("exit second") }

type brokenState struct{}

func (brokenState) Enter() error { return errors.New("boom") }
func (brokenState) Exit()        {}

func newTestMachine(j *journal) *Machine {
	m := NewMachine(service.NewContainer(), nil, nil)
	Define(m, func(*service.Container) (*firstState, error) {
		return &firstState{j: j}, nil
	})
	DefineWith(m, func(_ *service.Container, label string) (*secondState, error) {
		j.add("build second")
		return &secondState{j: j, label: label}, nil
	})
	return m
}

func TestInitialStateIsEmpty(t *testing.T) {
	m := newTestMachine(&journal{})
	assert.Nil(t, m.Current())
	assert.Empty(t, m.CurrentName())
}

func TestExitRunsBeforeNextEnter(t *testing.T) {
	j := &journal{}
	m := newTestMachine(j)

	require.NoError(t, Enter[*firstState](m))
	require.NoError(t, EnterWith[*secondState](m, "a"))

	assert.Equal(t, []string{"enter first", "exit first", "build second", "enter second a"}, j.events)
	assert.Equal(t, "secondState", m.CurrentName())
	assert.Equal(t, "a", m.Current().(*secondState).label)
}

func TestPhaseIsBuiltFreshOnEveryEntry(t *testing.T) {
	j := &journal{}
	m := newTestMachine(j)

	require.NoError(t, EnterWith[*secondState](m, "a"))
	first := m.Current()
	require.NoError(t, EnterWith[*secondState](m, "b"))

	assert.NotSame(t, first, m.Current())
	assert.Equal(t, "b", m.Current().(*secondState).label)
}

func TestTransitionFromEnterIsQueued(t *testing.T) {
	j := &journal{}
	m := NewMachine(service.NewContainer(), nil, nil)
	Define(m, func(*service.Container) (*firstState, error) {
		s := &firstState{j: j}
		s.onEnter = func() error {
			require.NoError(t, EnterWith[*secondState](m, "queued"))
			j.add("first enter returned")
			return nil
		}
		return s, nil
	})
	DefineWith(m, func(_ *service.Container, label string) (*secondState, error) {
		return &secondState{j: j, label: label}, nil
	})

	require.NoError(t, Enter[*firstState](m))

	assert.Equal(t, []string{
		"enter first",
		"first enter returned",
		"exit first",
		"enter second queued",
	}, j.events)
	assert.Equal(t, "secondState", m.CurrentName())
}

func TestQueuedTransitionsRunInOrder(t *testing.T) {
	j := &journal{}
	m := NewMachine(service.NewContainer(), nil, nil)
	Define(m, func(*service.Container) (*firstState, error) {
		s := &firstState{j: j}
		s.onEnter = func() error {
			require.NoError(t, EnterWith[*secondState](m, "1"))
			require.NoError(t, EnterWith[*secondState](m, "2"))
			return nil
		}
		return s, nil
	})
	DefineWith(m, func(_ *service.Container, label string) (*secondState, error) {
		return &secondState{j: j, label: label}, nil
	})

	require.NoError(t, Enter[*firstState](m))

	assert.Equal(t, []string{
		"enter first",
		"exit first",
		"enter second 1",
		"exit second",
		"enter second 2",
	}, j.events)
}

func TestUndefinedState(t *testing.T) {
	m := NewMachine(service.NewContainer(), nil, nil)
	err := Enter[*firstState](m)
	assert.ErrorIs(t, err, ErrUndefinedState)
	assert.Nil(t, m.Current())
}

func TestPayloadRequired(t *testing.T) {
	j := &journal{}
	m := newTestMachine(j)
	require.NoError(t, Enter[*firstState](m))

	err := Enter[*secondState](m)
	assert.ErrorIs(t, err, ErrPayloadRequired)
	assert.Equal(t, "firstState", m.CurrentName(), "failed validation keeps the current phase")
}

func TestPayloadMismatch(t *testing.T) {
	m := newTestMachine(&journal{})

	err := EnterWith[*secondState](m, 42)
	assert.ErrorIs(t, err, ErrPayloadMismatch)

	err = EnterWith[*firstState](m, "unexpected")
	assert.ErrorIs(t, err, ErrPayloadMismatch)
}

func TestBuildFailureLeavesNoCurrentPhase(t *testing.T) {
	j := &journal{}
	m := newTestMachine(j)
	DefineWith(m, func(c *service.Container, _ string) (*secondState, error) {
		_, err := service.Resolve[*journal](c)
		return nil, err
	})
	require.NoError(t, Enter[*firstState](m))

	err := EnterWith[*secondState](m, "x")
	assert.ErrorIs(t, err, service.ErrNotRegistered)
	assert.Contains(t, err.Error(), "secondState")
	assert.Nil(t, m.Current())
	assert.Equal(t, []string{"enter first", "exit first"}, j.events)
}

func TestEnterFailureDropsQueue(t *testing.T) {
	j := &journal{}
	m := NewMachine(service.NewContainer(), nil, nil)
	Define(m, func(*service.Container) (*firstState, error) {
		s := &firstState{j: j}
		s.onEnter = func() error {
			require.NoError(t, EnterWith[*secondState](m, "never"))
			return errors.New("boom")
		}
		return s, nil
	})
	DefineWith(m, func(_ *service.Container, label string) (*secondState, error) {
		return &secondState{j: j, label: label}, nil
	})

	err := Enter[*firstState](m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firstState")
	assert.Equal(t, []string{"enter first"}, j.events)

	// The machine accepts new transitions afterwards
	require.NoError(t, EnterWith[*secondState](m, "later"))
	assert.Equal(t, "later", m.Current().(*secondState).label)
}

func TestValueTypedState(t *testing.T) {
	m := NewMachine(service.NewContainer(), nil, nil)
	Define(m, func(*service.Container) (brokenState, error) { return brokenState{}, nil })

	err := Enter[brokenState](m)
	assert.EqualError(t, err, "enter brokenState: boom")
}
