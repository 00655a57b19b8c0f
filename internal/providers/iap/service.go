package iap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrPurchaseLimit  = errors.New("purchase limit reached")
)

// ProductDescription is a purchasable offer as shown in the shop
type ProductDescription struct {
	ID                     string
	Product                Product
	Config                 ProductConfig
	AvailablePurchasesLeft int
}

// Service is the purchase contract used by the shop
type Service interface {
	Initialize() error
	IsInitialized() bool
	Products() []ProductDescription
	StartPurchase(productID string) error
	OnInitialized(fn func()) (unsubscribe func())
}

// Store grants purchased products into the player's progress
type Store struct {
	provider *Provider
	progress *progress.Service
	log      *zap.Logger
	metrics  *monitoring.Metrics
}

var _ Service = (*Store)(nil)

// NewService creates the purchase service
func NewService(provider *Provider, progressService *progress.Service, log *zap.Logger, metrics *monitoring.Metrics) *Store {
	return &Store{
		provider: provider,
		progress: progressService,
		log:      logging.OrNop(log),
		metrics:  metrics,
	}
}

func (s *Store) Initialize() error {
	if err := s.provider.Initialize(s.processPurchase); err != nil {
		s.log.Warn("Shop offers disabled", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) IsInitialized() bool { return s.provider.IsInitialized() }

func (s *Store) OnInitialized(fn func()) (unsubscribe func()) {
	return s.provider.OnInitialized(fn)
}

// Products lists the offers that can still be bought, in catalog order
func (s *Store) Products() []ProductDescription {
	if !s.provider.IsInitialized() {
		return nil
	}

	var out []ProductDescription
	for _, cfg := range s.provider.Catalog().All() {
		product, ok := s.provider.Product(cfg.ID)
		if !ok || !product.Available {
			continue
		}
		left := s.purchasesLeft(cfg)
		if left == 0 {
			continue
		}
		out = append(out, ProductDescription{
			ID:                     cfg.ID,
			Product:                product,
			Config:                 cfg,
			AvailablePurchasesLeft: left,
		})
	}
	return out
}

// StartPurchase begins buying productID. Completion arrives asynchronously.
func (s *Store) StartPurchase(productID string) error {
	cfg, ok := s.provider.Catalog().Get(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if s.purchasesLeft(cfg) == 0 {
		return fmt.Errorf("%w: %s", ErrPurchaseLimit, productID)
	}
	if err := s.provider.StartPurchase(productID); err != nil {
		s.metrics.RecordPurchase(productID, "error")
		return err
	}
	s.metrics.RecordPurchase(productID, "started")
	return nil
}

// purchasesLeft returns -1 for unlimited products
func (s *Store) purchasesLeft(cfg ProductConfig) int {
	if cfg.MaxPurchaseCount <= 0 {
		return -1
	}
	bought := 0
	if p := s.progress.Progress(); p != nil && p.PurchaseData != nil {
		bought = p.PurchaseData.Count(cfg.ID)
	}
	if left := cfg.MaxPurchaseCount - bought; left > 0 {
		return left
	}
	return 0
}

func (s *Store) processPurchase(productID string) {
	cfg, ok := s.provider.Catalog().Get(productID)
	if !ok {
		s.metrics.RecordPurchase(productID, "unknown")
		s.log.Error("Purchase of unknown product", zap.String("product", productID))
		return
	}

	p := s.progress.Progress()
	if p == nil {
		s.metrics.RecordPurchase(productID, "no_progress")
		s.log.Error("Purchase before progress loaded", zap.String("product", productID))
		return
	}
	if s.purchasesLeft(cfg) == 0 {
		s.metrics.RecordPurchase(productID, "limit")
		s.log.Warn("Purchase over limit ignored", zap.String("product", productID))
		return
	}

	p.WorldData.LootData.Add(cfg.Quantity)
	p.PurchaseData.AddPurchase(productID)
	s.metrics.RecordPurchase(productID, "granted")
}
