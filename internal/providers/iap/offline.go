package iap

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Offline simulates a store: initialization and every purchase succeed
// after latency.
type Offline struct {
	latency time.Duration

	mu        sync.Mutex
	listener  Listener
	products  map[string]ProductConfig
	confirmed map[string]int
}

// NewOffline creates an offline store platform
func NewOffline(latency time.Duration) *Offline {
	return &Offline{
		latency:   latency,
		products:  make(map[string]ProductConfig),
		confirmed: make(map[string]int),
	}
}

func (o *Offline) Initialize(environment string, products []ProductConfig, listener Listener) error {
	if listener == nil {
		return errors.New("listener is required")
	}

	o.mu.Lock()
	o.listener = listener
	reported := make([]Product, 0, len(products))
	for _, cfg := range products {
		o.products[cfg.ID] = cfg
		reported = append(reported, Product{
			ID:             cfg.ID,
			LocalizedPrice: cfg.Price,
			Available:      true,
		})
	}
	o.mu.Unlock()

	time.AfterFunc(o.latency, func() { listener.OnInitialized(reported) })
	return nil
}

func (o *Offline) Purchase(productID string) error {
	o.mu.Lock()
	l := o.listener
	_, ok := o.products[productID]
	o.mu.Unlock()

	if l == nil {
		return ErrNotInitialized
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	time.AfterFunc(o.latency, func() { l.ProcessPurchase(productID) })
	return nil
}

func (o *Offline) ConfirmPurchase(productID string) {
	o.mu.Lock()
	o.confirmed[productID]++
	o.mu.Unlock()
}

// Confirmed returns how many purchases of productID were acknowledged
func (o *Offline) Confirmed(productID string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.confirmed[productID]
}
