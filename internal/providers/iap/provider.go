package iap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
)

var ErrNotInitialized = errors.New("store not initialized")

// Provider owns the store connection and the product catalog. All of its
// state changes happen on the frame goroutine.
type Provider struct {
	platform    Platform
	dispatcher  *runtime.Dispatcher
	environment string
	log         *zap.Logger

	catalog     *Catalog
	products    map[string]Product
	initialized bool
	ready       event.Once

	onPurchase func(productID string)
}

// NewProvider creates a provider for catalog
func NewProvider(platform Platform, catalog *Catalog, dispatcher *runtime.Dispatcher, environment string, log *zap.Logger) *Provider {
	return &Provider{
		platform:    platform,
		dispatcher:  dispatcher,
		environment: environment,
		log:         logging.OrNop(log),
		catalog:     catalog,
		products:    make(map[string]Product),
	}
}

// Initialize registers the catalog with the store. onPurchase is called on
// the frame goroutine for every successful purchase.
func (p *Provider) Initialize(onPurchase func(productID string)) error {
	p.onPurchase = onPurchase
	if err := p.platform.Initialize(p.environment, p.catalog.All(), listener{p}); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	return nil
}

// IsInitialized reports whether the store finished initializing
func (p *Provider) IsInitialized() bool { return p.initialized }

// Catalog returns the loaded product configs
func (p *Provider) Catalog() *Catalog { return p.catalog }

// Product returns what the store reported for id
func (p *Provider) Product(id string) (Product, bool) {
	product, ok := p.products[id]
	return product, ok
}

// OnInitialized runs fn once the store is ready, or immediately if it already is
func (p *Provider) OnInitialized(fn func()) (unsubscribe func()) {
	return p.ready.Subscribe(fn)
}

// StartPurchase asks the store to buy productID
func (p *Provider) StartPurchase(productID string) error {
	if !p.initialized {
		return ErrNotInitialized
	}
	return p.platform.Purchase(productID)
}

func (p *Provider) handleInitialized(products []Product) {
	for _, product := range products {
		p.products[product.ID] = product
	}
	p.initialized = true
	p.log.Info("Store initialized", zap.Int("products", len(products)))
	p.ready.Fire()
}

func (p *Provider) handleInitializeFailed(reason string) {
	p.log.Warn("Store initialization failed", zap.String("reason", reason))
}

func (p *Provider) handlePurchase(productID string) {
	p.log.Info("Purchase processed", zap.String("product", productID))
	if p.onPurchase != nil {
		p.onPurchase(productID)
	}
	// Confirm even when nothing was granted (unknown product, no progress,
	// over limit) so the platform stops redelivering the transaction.
	p.platform.ConfirmPurchase(productID)
}

func (p *Provider) handlePurchaseFailed(productID, reason string) {
	p.log.Error("Purchase failed",
		zap.String("product", productID),
		zap.String("reason", reason),
	)
}

type listener struct{ p *Provider }

func (l listener) OnInitialized(products []Product) {
	products = append([]Product(nil), products...)
	l.p.dispatcher.Post(func() { l.p.handleInitialized(products) })
}

func (l listener) OnInitializeFailed(reason string) {
	l.p.dispatcher.Post(func() { l.p.handleInitializeFailed(reason) })
}

func (l listener) ProcessPurchase(productID string) {
	l.p.dispatcher.Post(func() { l.p.handlePurchase(productID) })
}

func (l listener) OnPurchaseFailed(productID, reason string) {
	l.p.dispatcher.Post(func() { l.p.handlePurchaseFailed(productID, reason) })
}
