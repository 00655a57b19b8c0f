package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/domain/saveload"
	"github.com/GriffinCanCode/skullgate/internal/domain/state"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
	"github.com/GriffinCanCode/skullgate/internal/service"
	"github.com/GriffinCanCode/skullgate/internal/storage"
	"github.com/GriffinCanCode/skullgate/internal/testutil"
)

type fixture struct {
	server    *Server
	container *service.Container
	loop      *runtime.Loop
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, config.Default().Debug)
}

func newFixtureWith(t *testing.T, cfg config.DebugConfig) *fixture {
	t.Helper()
	container := service.NewContainer()
	machine := state.NewMachine(container, nil, nil)
	metrics := monitoring.NewMetrics()
	loop := runtime.NewLoop(time.Millisecond, nil, nil, metrics)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = loop.Run(ctx) }()

	return &fixture{
		server:    New(cfg, true, machine, loop.Dispatcher(), metrics, nil),
		container: container,
		loop:      loop,
	}
}

func (f *fixture) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestStatusBeforeBootstrap(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Empty(t, status.Phase)
	assert.Zero(t, status.Services)
	assert.Empty(t, status.Progress)
}

func TestStatusIncludesProgress(t *testing.T) {
	f := newFixture(t)
	ps := progress.NewService()
	ps.SetProgress(testutil.Progress("Main"))
	service.MustRegister(f.container, ps)

	rec := f.do(http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 1, status.Services)

	p, err := saveload.JSONCodec{}.Decode(status.Progress)
	require.NoError(t, err)
	assert.Equal(t, "Main", p.WorldData.PositionOnLevel.Level)
}

func TestStatusReportsStorageBreaker(t *testing.T) {
	f := newFixture(t)
	service.MustRegister[storage.Store](f.container, storage.NewGuard(storage.NewMemory(), resilience.Settings{}))

	rec := f.do(http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "closed", status.StorageBreaker)
}

func TestStatusOmitsBreakerForPlainStore(t *testing.T) {
	f := newFixture(t)
	service.MustRegister[storage.Store](f.container, storage.NewMemory())

	rec := f.do(http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "storage_breaker")
}

func TestSaveWithoutPipeline(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/save")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSave(t *testing.T) {
	f := newFixture(t)
	sl := testutil.NewMockSaveLoad(t)
	service.MustRegister[saveload.Service](f.container, sl)

	rec := f.do(http.MethodPost, "/save")
	assert.Equal(t, http.StatusOK, rec.Code)
	sl.AssertCalled(t, "SaveProgress", mock.Anything)
}

func TestSaveWithoutProgress(t *testing.T) {
	f := newFixture(t)
	sl := new(testutil.MockSaveLoad)
	sl.On("SaveProgress", mock.Anything).Return(saveload.ErrNoProgress)
	service.MustRegister[saveload.Service](f.container, sl)

	rec := f.do(http.MethodPost, "/save")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/health")

	rec := f.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "game_debug_http_requests_total")
}

func TestSaveIsRateLimited(t *testing.T) {
	f := newFixtureWith(t, config.DebugConfig{SaveRate: 1, SaveBurst: 1})
	service.MustRegister[saveload.Service](f.container, testutil.NewMockSaveLoad(t))

	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/save").Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, "/save").Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCloseRightAfterRunStopsServer(t *testing.T) {
	srv := New(config.DebugConfig{Addr: "127.0.0.1:0"}, true, state.NewMachine(service.NewContainer(), nil, nil), nil, monitoring.NewMetrics(), nil)

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Close(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}
