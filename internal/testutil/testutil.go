// Package testutil provides mocks and fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/providers/iap"
)

// MockSaveLoad is a mock implementation of saveload.Service.
type MockSaveLoad struct {
	mock.Mock
}

// SaveProgress mocks the SaveProgress method.
func (m *MockSaveLoad) SaveProgress(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// LoadProgress mocks the LoadProgress method.
func (m *MockSaveLoad) LoadProgress(ctx context.Context) (*progress.PlayerProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progress.PlayerProgress), args.Error(1)
}

// NewMockSaveLoad creates a mock that saves successfully and finds no save.
func NewMockSaveLoad(t *testing.T) *MockSaveLoad {
	t.Helper()
	m := new(MockSaveLoad)
	m.On("SaveProgress", mock.Anything).Return(nil).Maybe()
	m.On("LoadProgress", mock.Anything).Return(nil, nil).Maybe()
	return m
}

// MockIAP is a mock implementation of iap.Service.
type MockIAP struct {
	mock.Mock
}

// Initialize mocks the Initialize method.
func (m *MockIAP) Initialize() error {
	return m.Called().Error(0)
}

// IsInitialized mocks the IsInitialized method.
func (m *MockIAP) IsInitialized() bool {
	return m.Called().Bool(0)
}

// Products mocks the Products method.
func (m *MockIAP) Products() []iap.ProductDescription {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]iap.ProductDescription)
}

// StartPurchase mocks the StartPurchase method.
func (m *MockIAP) StartPurchase(productID string) error {
	return m.Called(productID).Error(0)
}

// OnInitialized mocks the OnInitialized method. The callback is not invoked.
func (m *MockIAP) OnInitialized(fn func()) func() {
	m.Called(fn)
	return func() {}
}

// NewMockIAP creates an initialized store mock offering products.
func NewMockIAP(t *testing.T, products ...iap.ProductDescription) *MockIAP {
	t.Helper()
	m := new(MockIAP)
	m.On("Initialize").Return(nil).Maybe()
	m.On("IsInitialized").Return(true).Maybe()
	m.On("Products").Return(products).Maybe()
	m.On("OnInitialized", mock.Anything).Return().Maybe()
	return m
}

// MockAds is a mock implementation of ads.Service.
type MockAds struct {
	mock.Mock
}

// Initialize mocks the Initialize method.
func (m *MockAds) Initialize() error {
	return m.Called().Error(0)
}

// IsRewardedVideoReady mocks the IsRewardedVideoReady method.
func (m *MockAds) IsRewardedVideoReady() bool {
	return m.Called().Bool(0)
}

// ShowRewardedVideo mocks the ShowRewardedVideo method. When the mock is
// configured to succeed the callback runs immediately.
func (m *MockAds) ShowRewardedVideo(onFinished func()) error {
	err := m.Called(onFinished).Error(0)
	if err == nil && onFinished != nil {
		onFinished()
	}
	return err
}

// Reward mocks the Reward method.
func (m *MockAds) Reward() int {
	return m.Called().Int(0)
}

// OnRewardedVideoReady mocks the OnRewardedVideoReady method.
func (m *MockAds) OnRewardedVideoReady(fn func()) func() {
	m.Called(fn)
	return func() {}
}

// NewMockAds creates an ads mock whose video is ready and rewards 13.
func NewMockAds(t *testing.T) *MockAds {
	t.Helper()
	m := new(MockAds)
	m.On("Initialize").Return(nil).Maybe()
	m.On("IsRewardedVideoReady").Return(true).Maybe()
	m.On("ShowRewardedVideo", mock.Anything).Return(nil).Maybe()
	m.On("Reward").Return(13).Maybe()
	m.On("OnRewardedVideoReady", mock.Anything).Return().Maybe()
	return m
}

// Progress builds the default new-game aggregate.
func Progress(level string) *progress.PlayerProgress {
	p := progress.New(level)
	p.HeroState.MaxHP = 50
	p.HeroState.ResetHP()
	p.HeroStats.Damage = 1
	p.HeroStats.DamageRadius = 0.5
	return p
}
