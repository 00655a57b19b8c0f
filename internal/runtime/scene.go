package runtime

import (
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
)

type sceneRequest struct {
	name     string
	onLoaded func()
}

// SceneLoader switches the active scene. Content lives outside the core, so
// a load is a one-frame step: the request completes on the next Tick.
type SceneLoader struct {
	log     *zap.Logger
	current string
	pending []sceneRequest
}

// NewSceneLoader creates a loader with no active scene
func NewSceneLoader(log *zap.Logger) *SceneLoader {
	return &SceneLoader{log: logging.OrNop(log)}
}

// Current returns the active scene name
func (s *SceneLoader) Current() string { return s.current }

// Load switches to name and calls onLoaded once it is active. Asking for the
// scene that is already active calls onLoaded immediately.
func (s *SceneLoader) Load(name string, onLoaded func()) {
	if name == s.current && len(s.pending) == 0 {
		s.log.Debug("Scene already active", zap.String("scene", name))
		if onLoaded != nil {
			onLoaded()
		}
		return
	}
	s.pending = append(s.pending, sceneRequest{name: name, onLoaded: onLoaded})
}

// Tick completes the loads requested before this frame
func (s *SceneLoader) Tick(time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	batch := s.pending
	s.pending = nil

	for _, req := range batch {
		s.current = req.name
		s.log.Info("Scene loaded", zap.String("scene", req.name))
		if req.onLoaded != nil {
			req.onLoaded()
		}
	}
}
