package ads

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/shared/event"
)

const (
	RewardedVideoPlacement = "rewardedVideo"
	// Reward is the loot granted for a fully watched video
	Reward = 13
)

var ErrNotReady = errors.New("rewarded video not ready")

// ShowResult is how an ad view ended
type ShowResult int

const (
	ShowFailed ShowResult = iota
	ShowSkipped
	ShowFinished
)

func (r ShowResult) String() string {
	switch r {
	case ShowFinished:
		return "finished"
	case ShowSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Listener receives platform callbacks. Platforms may call it from any goroutine.
type Listener interface {
	OnReady(placement string)
	OnError(message string)
	OnStart(placement string)
	OnFinished(placement string, result ShowResult)
}

// Platform is the ads SDK binding
type Platform interface {
	Initialize(gameID string, listener Listener) error
	IsReady(placement string) bool
	Show(placement string) error
}

// Service is the rewarded video contract used by the shop
type Service interface {
	Initialize() error
	IsRewardedVideoReady() bool
	ShowRewardedVideo(onFinished func()) error
	Reward() int
	OnRewardedVideoReady(fn func()) (unsubscribe func())
}

// Rewarded wraps a platform and delivers its callbacks on the frame goroutine
type Rewarded struct {
	platform   Platform
	dispatcher *runtime.Dispatcher
	gameID     string
	log        *zap.Logger
	metrics    *monitoring.Metrics

	ready      event.Once
	onFinished func()
}

var _ Service = (*Rewarded)(nil)

// NewService creates a rewarded video service
func NewService(platform Platform, dispatcher *runtime.Dispatcher, gameID string, log *zap.Logger, metrics *monitoring.Metrics) *Rewarded {
	return &Rewarded{
		platform:   platform,
		dispatcher: dispatcher,
		gameID:     gameID,
		log:        logging.OrNop(log),
		metrics:    metrics,
	}
}

// Initialize starts the platform. Readiness arrives later through
// OnRewardedVideoReady.
func (s *Rewarded) Initialize() error {
	if err := s.platform.Initialize(s.gameID, listener{s}); err != nil {
		s.log.Warn("Ads unavailable", zap.Error(err))
		return fmt.Errorf("initialize ads: %w", err)
	}
	s.log.Info("Ads initializing", zap.String("game_id", s.gameID))
	return nil
}

func (s *Rewarded) IsRewardedVideoReady() bool {
	return s.platform.IsReady(RewardedVideoPlacement)
}

// ShowRewardedVideo plays a video; onFinished runs only if it is watched to the end
func (s *Rewarded) ShowRewardedVideo(onFinished func()) error {
	if !s.IsRewardedVideoReady() {
		return ErrNotReady
	}
	s.onFinished = onFinished
	if err := s.platform.Show(RewardedVideoPlacement); err != nil {
		s.onFinished = nil
		s.metrics.RecordRewardedAd("error")
		return fmt.Errorf("show rewarded video: %w", err)
	}
	return nil
}

func (s *Rewarded) Reward() int { return Reward }

func (s *Rewarded) OnRewardedVideoReady(fn func()) (unsubscribe func()) {
	return s.ready.Subscribe(fn)
}

func (s *Rewarded) handleReady(placement string) {
	s.log.Debug("Ad ready", zap.String("placement", placement))
	if placement == RewardedVideoPlacement {
		s.ready.Fire()
	}
}

func (s *Rewarded) handleError(message string) {
	s.log.Warn("Ads error", zap.String("message", message))
}

func (s *Rewarded) handleStart(placement string) {
	s.log.Debug("Ad started", zap.String("placement", placement))
}

func (s *Rewarded) handleFinished(placement string, result ShowResult) {
	s.metrics.RecordRewardedAd(result.String())
	s.log.Info("Ad finished",
		zap.String("placement", placement),
		zap.String("result", result.String()),
	)

	done := s.onFinished
	s.onFinished = nil
	if result == ShowFinished && done != nil {
		done()
	}
}

// listener marshals platform callbacks onto the frame goroutine
type listener struct{ s *Rewarded }

func (l listener) OnReady(placement string) {
	l.s.dispatcher.Post(func() { l.s.handleReady(placement) })
}

func (l listener) OnError(message string) {
	l.s.dispatcher.Post(func() { l.s.handleError(message) })
}

func (l listener) OnStart(placement string) {
	l.s.dispatcher.Post(func() { l.s.handleStart(placement) })
}

func (l listener) OnFinished(placement string, result ShowResult) {
	l.s.dispatcher.Post(func() { l.s.handleFinished(placement, result) })
}
