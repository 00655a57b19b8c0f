package iap

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/skullgate/internal/providers/assets"
)

// CatalogPath is where the product catalog lives in the data directory
const CatalogPath = "IAP/products.yaml"

// ProductType mirrors store product kinds
type ProductType string

const (
	Consumable    ProductType = "consumable"
	NonConsumable ProductType = "non_consumable"
)

// ProductConfig is one catalog entry
type ProductConfig struct {
	ID               string      `yaml:"id"`
	Type             ProductType `yaml:"type"`
	Title            string      `yaml:"title"`
	Price            string      `yaml:"price"`
	Quantity         int         `yaml:"quantity"`
	MaxPurchaseCount int         `yaml:"max_purchase_count"`
	Icon             string      `yaml:"icon,omitempty"`
}

type catalogFile struct {
	Configs []ProductConfig `yaml:"configs"`
}

// Catalog keeps product configs in file order
type Catalog struct {
	configs []ProductConfig
	byID    map[string]ProductConfig
}

// ParseCatalog decodes a YAML product catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse product catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]ProductConfig, len(file.Configs))}
	for _, cfg := range file.Configs {
		if cfg.ID == "" {
			return nil, fmt.Errorf("product catalog: entry without id")
		}
		if _, dup := c.byID[cfg.ID]; dup {
			return nil, fmt.Errorf("product catalog: duplicate id %q", cfg.ID)
		}
		if cfg.Type == "" {
			cfg.Type = Consumable
		}
		c.configs = append(c.configs, cfg)
		c.byID[cfg.ID] = cfg
	}
	return c, nil
}

// EmptyCatalog returns a catalog with no products
func EmptyCatalog() *Catalog {
	return &Catalog{byID: map[string]ProductConfig{}}
}

// LoadCatalog reads the catalog from the data directory
func LoadCatalog(provider assets.Provider) (*Catalog, error) {
	data, err := provider.Read(CatalogPath)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// All returns every config in catalog order
func (c *Catalog) All() []ProductConfig {
	return append([]ProductConfig(nil), c.configs...)
}

// Get looks a config up by product id
func (c *Catalog) Get(id string) (ProductConfig, bool) {
	cfg, ok := c.byID[id]
	return cfg, ok
}
