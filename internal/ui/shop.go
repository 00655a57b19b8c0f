package ui

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/providers/ads"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
)

// ShopItem is one purchasable offer
type ShopItem struct {
	Product iap.ProductDescription
	iap     iap.Service
}

func (i *ShopItem) Title() string { return i.Product.Config.Title }

func (i *ShopItem) Price() string { return i.Product.Product.LocalizedPrice }

// Click starts the purchase
func (i *ShopItem) Click() error { return i.iap.StartPurchase(i.Product.ID) }

// RewardedAdItem trades a watched video for loot
type RewardedAdItem struct {
	ads      ads.Service
	progress *progress.Service
}

// Available reports whether a video can be shown now
func (i *RewardedAdItem) Available() bool { return i.ads.IsRewardedVideoReady() }

// Click shows the video; the reward is granted when it finishes
func (i *RewardedAdItem) Click() error {
	return i.ads.ShowRewardedVideo(func() {
		if p := i.progress.Progress(); p != nil {
			p.WorldData.LootData.Add(i.ads.Reward())
		}
	})
}

// ShopWindow lists offers and shows the player's skull count
type ShopWindow struct {
	Config staticdata.WindowConfig
	AdItem *RewardedAdItem

	progress  *progress.Service
	iap       iap.Service
	root      *Root
	log       *zap.Logger
	skullText string
	items     []*ShopItem
	unsubs    []func()
}

var _ Window = (*ShopWindow)(nil)

func newShopWindow(cfg staticdata.WindowConfig, progressService *progress.Service, iapService iap.Service, adsService ads.Service, root *Root, log *zap.Logger) *ShopWindow {
	return &ShopWindow{
		Config:   cfg,
		AdItem:   &RewardedAdItem{ads: adsService, progress: progressService},
		progress: progressService,
		iap:      iapService,
		root:     root,
		log:      log,
	}
}

func (w *ShopWindow) ID() WindowID { return WindowShop }

// SkullText is the displayed loot total
func (w *ShopWindow) SkullText() string { return w.skullText }

// Items returns the offers currently shown
func (w *ShopWindow) Items() []*ShopItem { return w.items }

func (w *ShopWindow) open() {
	p := w.progress.Progress()
	w.refreshSkullText()
	w.refreshItems()

	if p != nil {
		w.unsubs = append(w.unsubs,
			p.WorldData.LootData.Subscribe(w.refreshSkullText),
			p.PurchaseData.Subscribe(w.refreshItems),
		)
	}
	w.unsubs = append(w.unsubs, w.iap.OnInitialized(w.refreshItems))
	w.log.Debug("Window opened", zap.String("window", string(w.ID())))
}

// Close unsubscribes from progress and removes the window from the root
func (w *ShopWindow) Close() {
	for _, unsub := range w.unsubs {
		unsub()
	}
	w.unsubs = nil
	w.root.detach(w)
}

func (w *ShopWindow) refreshSkullText() {
	p := w.progress.Progress()
	if p == nil {
		w.skullText = "0"
		return
	}
	w.skullText = strconv.Itoa(p.WorldData.LootData.Collected)
}

func (w *ShopWindow) refreshItems() {
	products := w.iap.Products()
	items := make([]*ShopItem, 0, len(products))
	for _, product := range products {
		items = append(items, &ShopItem{Product: product, iap: w.iap})
	}
	w.items = items
}
