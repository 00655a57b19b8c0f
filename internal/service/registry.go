package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var (
	ErrAlreadyRegistered = errors.New("service already registered")
	ErrNotRegistered     = errors.New("service not registered")
	ErrNilService        = errors.New("service instance is nil")
)

// Container maps a service contract to its single live instance.
// Access is single-threaded; there is no internal locking.
type Container struct {
	services map[reflect.Type]any
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{services: make(map[reflect.Type]any)}
}

// Handle returns the registry key for the contract T
func Handle[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Register installs the singleton for T
func Register[T any](c *Container, instance T) error {
	handle := Handle[T]()
	if isNil(instance) {
		return fmt.Errorf("register %s: %w", handle, ErrNilService)
	}
	if _, exists := c.services[handle]; exists {
		return fmt.Errorf("register %s: %w", handle, ErrAlreadyRegistered)
	}
	c.services[handle] = instance
	return nil
}

// MustRegister is Register for bootstrap code where a failure is a bug.
func MustRegister[T any](c *Container, instance T) {
	if err := Register(c, instance); err != nil {
		panic(err)
	}
}

// Resolve returns the singleton registered for T
func Resolve[T any](c *Container) (T, error) {
	var zero T
	handle := Handle[T]()
	instance, ok := c.services[handle]
	if !ok {
		return zero, fmt.Errorf("resolve %s: %w", handle, ErrNotRegistered)
	}
	return instance.(T), nil
}

// MustResolve is Resolve that panics on an unregistered handle.
func MustResolve[T any](c *Container) T {
	instance, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return instance
}

// Has reports whether T has a registered instance
func Has[T any](c *Container) bool {
	_, ok := c.services[Handle[T]()]
	return ok
}

// Len returns the number of registered services
func (c *Container) Len() int {
	return len(c.services)
}

// Handles returns the registered contract names, sorted
func (c *Container) Handles() []string {
	names := make([]string, 0, len(c.services))
	for handle := range c.services {
		names = append(names, handle.String())
	}
	sort.Strings(names)
	return names
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
