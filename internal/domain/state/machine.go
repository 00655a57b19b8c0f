package state

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/service"
)

var (
	ErrUndefinedState  = errors.New("state not defined")
	ErrPayloadRequired = errors.New("state requires a payload")
	ErrPayloadMismatch = errors.New("state payload type mismatch")
)

// State is one lifecycle phase
type State interface {
	Enter() error
	Exit()
}

type definition struct {
	name    string
	payload reflect.Type
	build   func(c *service.Container, payload any) (State, error)
}

type transition struct {
	handle      reflect.Type
	payload     any
	payloadType reflect.Type
}

// Machine moves the game between phases. A phase is built fresh from its
// factory on every entry. Transitions requested while another transition is
// running are queued and applied in request order once it completes.
type Machine struct {
	container *service.Container
	log       *zap.Logger
	metrics   *monitoring.Metrics

	definitions   map[reflect.Type]definition
	current       State
	currentName   string
	transitioning bool
	pending       []transition
}

// NewMachine creates a machine with no phases and no current phase
func NewMachine(container *service.Container, log *zap.Logger, metrics *monitoring.Metrics) *Machine {
	return &Machine{
		container:   container,
		log:         logging.OrNop(log),
		metrics:     metrics,
		definitions: make(map[reflect.Type]definition),
	}
}

// Container returns the service container phases are built from
func (m *Machine) Container() *service.Container { return m.container }

// Current returns the active phase, or nil
func (m *Machine) Current() State { return m.current }

// CurrentName returns the active phase's type name, or "" if none
func (m *Machine) CurrentName() string { return m.currentName }

// Define declares how to build phase T
func Define[T State](m *Machine, build func(c *service.Container) (T, error)) {
	handle := reflect.TypeFor[T]()
	m.definitions[handle] = definition{
		name: stateName(handle),
		build: func(c *service.Container, _ any) (State, error) {
			return build(c)
		},
	}
}

// DefineWith declares how to build phase T from a payload of type P
func DefineWith[T State, P any](m *Machine, build func(c *service.Container, payload P) (T, error)) {
	handle := reflect.TypeFor[T]()
	m.definitions[handle] = definition{
		name:    stateName(handle),
		payload: reflect.TypeFor[P](),
		build: func(c *service.Container, payload any) (State, error) {
			p, _ := payload.(P)
			return build(c, p)
		},
	}
}

// Enter switches to phase T
func Enter[T State](m *Machine) error {
	return m.request(transition{handle: reflect.TypeFor[T]()})
}

// EnterWith switches to phase T, passing payload to its factory
func EnterWith[T State, P any](m *Machine, payload P) error {
	return m.request(transition{
		handle:      reflect.TypeFor[T](),
		payload:     payload,
		payloadType: reflect.TypeFor[P](),
	})
}

func (m *Machine) request(t transition) error {
	m.pending = append(m.pending, t)
	if m.transitioning {
		return nil
	}

	m.transitioning = true
	defer func() { m.transitioning = false }()

	for len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		if err := m.run(next); err != nil {
			if dropped := len(m.pending); dropped > 0 {
				m.log.Warn("Dropping queued transitions", zap.Int("count", dropped))
			}
			m.pending = nil
			return err
		}
	}
	return nil
}

func (m *Machine) run(t transition) error {
	def, ok := m.definitions[t.handle]
	if !ok {
		return fmt.Errorf("enter %s: %w", stateName(t.handle), ErrUndefinedState)
	}
	switch {
	case def.payload != nil && t.payloadType == nil:
		return fmt.Errorf("enter %s: %w", def.name, ErrPayloadRequired)
	case t.payloadType != nil && t.payloadType != def.payload:
		return fmt.Errorf("enter %s: %w: got %s", def.name, ErrPayloadMismatch, t.payloadType)
	}

	from := m.currentName
	if m.current != nil {
		m.current.Exit()
		m.current = nil
		m.currentName = ""
	}

	timer := monitoring.NewTimer(m.metrics, def.name)
	next, err := def.build(m.container, t.payload)
	if err != nil {
		timer.Stop("build_error")
		m.log.Error("Failed to build state", zap.String("state", def.name), zap.Error(err))
		return fmt.Errorf("build %s: %w", def.name, err)
	}

	m.current = next
	m.currentName = def.name
	m.log.Info("Entering state", zap.String("state", def.name), zap.String("from", from))

	if err := next.Enter(); err != nil {
		timer.Stop("enter_error")
		m.log.Error("State enter failed", zap.String("state", def.name), zap.Error(err))
		return fmt.Errorf("enter %s: %w", def.name, err)
	}
	timer.Stop("ok")
	return nil
}

func stateName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
