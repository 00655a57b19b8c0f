package saveload

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/storage"
)

// ProgressKey is the durable slot holding the serialized aggregate
const ProgressKey = "Progress"

var ErrNoProgress = errors.New("no current progress to save")

// WriterSource yields the live progress writers at the moment of a save
type WriterSource interface {
	ProgressWriters() []progress.Writer
}

// Service is the contract the lifecycle and save triggers depend on
type Service interface {
	SaveProgress(ctx context.Context) error
	LoadProgress(ctx context.Context) (*progress.PlayerProgress, error)
}

var _ Service = (*Pipeline)(nil)

// Pipeline moves the aggregate between the progress store and durable storage
type Pipeline struct {
	progress *progress.Service
	writers  WriterSource
	store    storage.Store
	codec    Codec
	log      *zap.Logger
	metrics  *monitoring.Metrics
}

// NewPipeline creates a save/load pipeline. A nil codec selects JSON.
func NewPipeline(
	progressService *progress.Service,
	writers WriterSource,
	store storage.Store,
	codec Codec,
	log *zap.Logger,
	metrics *monitoring.Metrics,
) *Pipeline {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Pipeline{
		progress: progressService,
		writers:  writers,
		store:    store,
		codec:    codec,
		log:      logging.OrNop(log),
		metrics:  metrics,
	}
}

// Codec returns the active codec
func (s *Pipeline) Codec() Codec { return s.codec }

// SaveProgress pulls state from every live writer into the current aggregate
// and writes it to the Progress slot in a single Set.
func (s *Pipeline) SaveProgress(ctx context.Context) error {
	current := s.progress.Progress()
	if current == nil {
		s.metrics.RecordSave("skipped", 0)
		return ErrNoProgress
	}

	writers := s.writers.ProgressWriters()
	for _, w := range writers {
		w.UpdateProgress(current)
	}

	data, err := s.codec.Encode(current)
	if err != nil {
		s.metrics.RecordSave("encode_error", 0)
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	if err := s.store.Set(ctx, ProgressKey, data); err != nil {
		s.metrics.RecordSave("store_error", 0)
		s.log.Error("Failed to write progress", zap.Error(err))
		return fmt.Errorf("failed to write progress: %w", err)
	}

	s.metrics.RecordSave("ok", len(data))
	s.log.Info("Progress saved",
		zap.Int("writers", len(writers)),
		zap.Int("bytes", len(data)),
		zap.String("codec", s.codec.Name()),
	)
	return nil
}

// LoadProgress reads the Progress slot. It returns nil and no error when the
// slot is empty or holds data that cannot be played from; backend failures
// are returned.
func (s *Pipeline) LoadProgress(ctx context.Context) (*progress.PlayerProgress, error) {
	data, err := s.store.Get(ctx, ProgressKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.metrics.RecordLoad("absent")
		s.log.Info("No saved progress")
		return nil, nil
	}
	if err != nil {
		s.metrics.RecordLoad("error")
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.metrics.RecordLoad("absent")
		s.log.Info("Saved progress is empty")
		return nil, nil
	}

	p, err := s.codec.Decode(data)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		s.metrics.RecordLoad("corrupt")
		s.log.Warn("Discarding unreadable saved progress",
			zap.Error(err),
			zap.Int("bytes", len(data)),
		)
		return nil, nil
	}

	p.Normalize()
	s.metrics.RecordLoad("loaded")
	s.log.Info("Progress loaded",
		zap.String("level", p.WorldData.PositionOnLevel.Level),
	)
	return p, nil
}
