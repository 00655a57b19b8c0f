package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/state"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/storage"
)

// CallTimeout bounds how long a handler waits for the frame goroutine
const CallTimeout = 2 * time.Second

// Handlers contains the debug HTTP handlers
type Handlers struct {
	machine    *state.Machine
	dispatcher *runtime.Dispatcher
	log        *zap.Logger
	started    time.Time
}

// Status is the body of GET /status
type Status struct {
	Phase          string          `json:"phase"`
	Services       int             `json:"services"`
	StorageBreaker string          `json:"storage_breaker,omitempty"`
	Progress       json.RawMessage `json:"progress,omitempty"`
}

// NewHandlers creates a handler set
func NewHandlers(machine *state.Machine, dispatcher *runtime.Dispatcher, log *zap.Logger) *Handlers {
	return &Handlers{
		machine:    machine,
		dispatcher: dispatcher,
		log:        log,
		started:    time.Now(),
	}
}

// Health handles the liveness check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Status reports the current phase and a snapshot of player progress
func (h *Handlers) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), CallTimeout)
	defer cancel()

	status, err := runtime.Call(ctx, h.dispatcher, h.snapshot)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Save writes the current progress to the save slot
func (h *Handlers) Save(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), CallTimeout)
	defer cancel()

	_, err := runtime.Call(ctx, h.dispatcher, func() (struct{}, error) {
		sl, err := service.Resolve[saveload.Service](h.machine.Container())
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, sl.SaveProgress(ctx)
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true, "key": saveload.ProgressKey})
}

// snapshot runs on the frame goroutine
func (h *Handlers) snapshot() (Status, error) {
	status := Status{
		Phase:    h.machine.CurrentName(),
		Services: h.machine.Container().Len(),
	}
	if store, err := service.Resolve[storage.Store](h.machine.Container()); err == nil {
		if guard, ok := store.(*storage.Guard); ok {
			status.StorageBreaker = guard.Breaker().State().String()
		}
	}
	ps, err := service.Resolve[*progress.Service](h.machine.Container())
	if err != nil || ps.Progress() == nil {
		return status, nil
	}
	data, err := saveload.JSONCodec{}.Encode(ps.Progress())
	if err != nil {
		return status, err
	}
	status.Progress = data
	return status, nil
}

func (h *Handlers) fail(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotRegistered), errors.Is(err, runtime.ErrDispatcherClosed):
		code = http.StatusServiceUnavailable
	case errors.Is(err, saveload.ErrNoProgress):
		code = http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	}
	h.log.Warn("Debug request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(code, gin.H{"error": err.Error()})
}
