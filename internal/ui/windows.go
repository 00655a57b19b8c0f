package ui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/providers/ads"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
)

// WindowID names a window declared in windows.toml
type WindowID string

const (
	WindowUnknown WindowID = ""
	WindowShop    WindowID = "shop"
)

var (
	ErrUnknownWindow = errors.New("unknown window")
	ErrNoRoot        = errors.New("ui root not created")
)

// Window is an open window
type Window interface {
	ID() WindowID
	Close()
}

// Root holds the windows currently open on the level
type Root struct {
	windows []Window
}

// Windows returns the open windows, oldest first
func (r *Root) Windows() []Window {
	return append([]Window(nil), r.windows...)
}

func (r *Root) attach(w Window) { r.windows = append(r.windows, w) }

func (r *Root) detach(w Window) {
	for i, open := range r.windows {
		if open == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return
		}
	}
}

// CloseAll closes every open window
func (r *Root) CloseAll() {
	for _, w := range r.Windows() {
		w.Close()
	}
}

// Factory builds the UI root and windows
type Factory interface {
	CreateUIRoot() *Root
	Root() *Root
	CreateShop() (*ShopWindow, error)
}

// WindowService opens windows by id
type WindowService interface {
	Open(id WindowID) (Window, error)
}

// Builder is the default Factory
type Builder struct {
	static   staticdata.Service
	progress *progress.Service
	iap      iap.Service
	ads      ads.Service
	log      *zap.Logger
	root     *Root
}

var _ Factory = (*Builder)(nil)

// NewFactory creates a UI factory
func NewFactory(static staticdata.Service, progressService *progress.Service, iapService iap.Service, adsService ads.Service, log *zap.Logger) *Builder {
	return &Builder{
		static:   static,
		progress: progressService,
		iap:      iapService,
		ads:      adsService,
		log:      logging.OrNop(log),
	}
}

// CreateUIRoot replaces the root, closing windows left on the old one
func (b *Builder) CreateUIRoot() *Root {
	if b.root != nil {
		b.root.CloseAll()
	}
	b.root = &Root{}
	return b.root
}

func (b *Builder) Root() *Root { return b.root }

func (b *Builder) CreateShop() (*ShopWindow, error) {
	if b.root == nil {
		return nil, ErrNoRoot
	}
	cfg, err := b.static.Window(string(WindowShop))
	if err != nil {
		return nil, err
	}
	shop := newShopWindow(cfg, b.progress, b.iap, b.ads, b.root, b.log)
	b.root.attach(shop)
	shop.open()
	return shop, nil
}

// Windows is the default WindowService
type Windows struct {
	factory Factory
}

var _ WindowService = (*Windows)(nil)

// NewWindowService creates a window service backed by factory
func NewWindowService(factory Factory) *Windows {
	return &Windows{factory: factory}
}

func (w *Windows) Open(id WindowID) (Window, error) {
	switch id {
	case WindowShop:
		return w.factory.CreateShop()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
	}
}
