package storage

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/resilience"
)

// Guard routes store calls through a circuit breaker so a dead remote
// backend fails fast instead of stalling every save. A missing key counts
// as success.
type Guard struct {
	next    Store
	breaker *resilience.Breaker
}

// NewGuard wraps next with a breaker built from settings
func NewGuard(next Store, settings resilience.Settings) *Guard {
	if settings.IsSuccessful == nil {
		settings.IsSuccessful = func(err error) bool {
			return errors.Is(err, ErrNotFound)
		}
	}
	return &Guard{
		next:    next,
		breaker: resilience.New("storage", settings),
	}
}

// Breaker exposes the underlying breaker for status reporting
func (g *Guard) Breaker() *resilience.Breaker { return g.breaker }

func (g *Guard) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := g.breaker.Do(func() error {
		var err error
		value, err = g.next.Get(ctx, key)
		return err
	})
	return value, err
}

func (g *Guard) Set(ctx context.Context, key string, value []byte) error {
	return g.breaker.Do(func() error {
		return g.next.Set(ctx, key, value)
	})
}

func (g *Guard) Delete(ctx context.Context, key string) error {
	return g.breaker.Do(func() error {
		return g.next.Delete(ctx, key)
	})
}

func (g *Guard) Close() error { return g.next.Close() }
