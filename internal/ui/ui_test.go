package ui

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/skullgate/internal/domain/enemy"
	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/staticdata"
	"github.com/GriffinCanCode/skullgate/internal/providers/assets"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
	"github.com/GriffinCanCode/skullgate/internal/testutil"
)

func static(t *testing.T) staticdata.Service {
	t.Helper()
	c, err := staticdata.Load(assets.New(fstest.MapFS{
		staticdata.MonstersPath: {Data: []byte("")},
		staticdata.LevelsPath:   {Data: []byte("")},
		staticdata.WindowsPath:  {Data: []byte("[[windows]]\nid = \"shop\"\ntitle = \"Skull shop\"\n")},
	}))
	require.NoError(t, err)
	return c
}

func progressService() *progress.Service {
	ps := progress.NewService()
	ps.SetProgress(testutil.Progress("Main"))
	return ps
}

func TestHpBar(t *testing.T) {
	var bar HpBar
	bar.SetValue(25, 50)
	assert.Equal(t, 0.5, bar.Fill())

	bar.SetValue(-3, 50)
	assert.Equal(t, 0.0, bar.Fill())

	bar.SetValue(10, 0)
	assert.Equal(t, 0.0, bar.Fill())
}

func TestActorUITracksHealth(t *testing.T) {
	health := enemy.NewHealth(4)
	a := NewActorUI(health)
	assert.Equal(t, 1.0, a.Bar.Fill())

	health.TakeDamage(1)
	assert.Equal(t, 0.75, a.Bar.Fill())

	a.Close()
	health.TakeDamage(1)
	assert.Equal(t, 0.75, a.Bar.Fill(), "closed bars stop updating")
}

func TestLootCounter(t *testing.T) {
	ps := progressService()
	world := ps.Progress().WorldData

	c := NewLootCounter(world)
	assert.Equal(t, "0", c.Text())

	world.LootData.Add(5)
	assert.Equal(t, "5", c.Text())

	c.Close()
	world.LootData.Add(5)
	assert.Equal(t, "5", c.Text())
}

func TestCurtainFades(t *testing.T) {
	c := NewCurtain()
	assert.False(t, c.Visible())

	c.Show()
	assert.True(t, c.Visible())
	c.Tick(time.Second)
	assert.Equal(t, 1.0, c.Alpha(), "shown curtains do not fade")

	c.Hide()
	c.Tick(FadeDuration / 2)
	assert.InDelta(t, 0.5, c.Alpha(), 1e-9)
	c.Tick(FadeDuration)
	assert.False(t, c.Visible())
}

func TestShopWindow(t *testing.T) {
	ps := progressService()
	store := testutil.NewMockIAP(t, iap.ProductDescription{
		ID:      "skulls_small",
		Product: iap.Product{ID: "skulls_small", LocalizedPrice: "0.99", Available: true},
		Config:  iap.ProductConfig{ID: "skulls_small", Title: "Pile of skulls"},
	})
	store.On("StartPurchase", "skulls_small").Return(nil)
	adsService := testutil.NewMockAds(t)

	factory := NewFactory(static(t), ps, store, adsService, nil)
	windows := NewWindowService(factory)

	_, err := windows.Open(WindowShop)
	assert.ErrorIs(t, err, ErrNoRoot)

	root := factory.CreateUIRoot()
	w, err := windows.Open(WindowShop)
	require.NoError(t, err)
	shop := w.(*ShopWindow)
	assert.Equal(t, "Skull shop", shop.Config.Title)
	assert.Len(t, root.Windows(), 1)

	assert.Equal(t, "0", shop.SkullText())
	ps.Progress().WorldData.LootData.Add(3)
	assert.Equal(t, "3", shop.SkullText())

	require.Len(t, shop.Items(), 1)
	item := shop.Items()[0]
	assert.Equal(t, "Pile of skulls", item.Title())
	assert.Equal(t, "0.99", item.Price())
	require.NoError(t, item.Click())
	store.AssertCalled(t, "StartPurchase", "skulls_small")

	assert.True(t, shop.AdItem.Available())
	require.NoError(t, shop.AdItem.Click())
	assert.Equal(t, 16, ps.Progress().WorldData.LootData.Collected)

	shop.Close()
	assert.Empty(t, root.Windows())
	ps.Progress().WorldData.LootData.Add(1)
	assert.Equal(t, "16", shop.SkullText(), "closed windows are unsubscribed")
}

func TestOpenUnknownWindow(t *testing.T) {
	factory := NewFactory(static(t), progressService(), testutil.NewMockIAP(t), testutil.NewMockAds(t), nil)
	_, err := NewWindowService(factory).Open(WindowUnknown)
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestNewRootClosesOldWindows(t *testing.T) {
	factory := NewFactory(static(t), progressService(), testutil.NewMockIAP(t), testutil.NewMockAds(t), nil)
	old := factory.CreateUIRoot()
	_, err := factory.CreateShop()
	require.NoError(t, err)

	factory.CreateUIRoot()
	assert.Empty(t, old.Windows())
	assert.Empty(t, factory.Root().Windows())
}

func TestHudShopButton(t *testing.T) {
	ps := progressService()
	factory := NewFactory(static(t), ps, testutil.NewMockIAP(t), testutil.NewMockAds(t), nil)
	factory.CreateUIRoot()

	hud := NewHud(enemy.NewHealth(10), ps.Progress().WorldData, NewWindowService(factory))
	require.NoError(t, hud.ShopButton.Click())
	assert.Len(t, factory.Root().Windows(), 1)
	hud.Close()
}

func TestRewardedAdFailure(t *testing.T) {
	ps := progressService()
	adsService := new(testutil.MockAds)
	adsService.On("ShowRewardedVideo", mock.Anything).Return(errors.New("not ready"))

	item := &RewardedAdItem{ads: adsService, progress: ps}
	assert.Error(t, item.Click())
	assert.Equal(t, 0, ps.Progress().WorldData.LootData.Collected)
}
