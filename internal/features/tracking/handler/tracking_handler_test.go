package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ordersdomain "luxbag-tracker/internal/features/orders/domain"
	"luxbag-tracker/internal/features/tracking/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTrackingSession is a mock implementation of ports.TrackingSession.
type MockTrackingSession struct {
	mock.Mock
}

func (m *MockTrackingSession) Start(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func (m *MockTrackingSession) Stop() {
	m.Called()
}

func (m *MockTrackingSession) Snapshot() domain.Snapshot {
	args := m.Called()
	return args.Get(0).(domain.Snapshot)
}

func (m *MockTrackingSession) Subscribe(fn func(domain.Snapshot)) {
	m.Called(fn)
}

func setupApp(session *MockTrackingSession) *fiber.App {
	app := fiber.New()
	h := NewTrackingHandler(session)
	app.Post("/tracking/session", h.StartSession)
	app.Delete("/tracking/session", h.StopSession)
	app.Get("/tracking/snapshot", h.GetSnapshot)
	return app
}

func decodeSnapshot(t *testing.T, resp *http.Response) domain.Snapshot {
	t.Helper()
	var snap domain.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func TestStartSessionWithOrderID(t *testing.T) {
	session := new(MockTrackingSession)
	session.On("Start", mock.Anything, "order-abc").Return()
	session.On("Snapshot").Return(domain.Snapshot{
		Order:           &ordersdomain.Order{ID: "order-abc"},
		State:           domain.StateAdvancing,
		CurrentIndex:    2,
		ProgressPercent: 25,
		EstimatedTime:   "~11 min",
		ActiveStep:      domain.StepPreparing,
	})

	app := setupApp(session)
	body, err := json.Marshal(StartSessionRequest{OrderID: "order-abc"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/tracking/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decodeSnapshot(t, resp)
	assert.Equal(t, domain.StateAdvancing, snap.State)
	require.NotNil(t, snap.Order)
	assert.Equal(t, "order-abc", snap.Order.ID)
	session.AssertExpectations(t)
}

func TestStartSessionWithoutBodyTracksActiveDelivery(t *testing.T) {
	session := new(MockTrackingSession)
	session.On("Start", mock.Anything, "").Return()
	session.On("Snapshot").Return(domain.Snapshot{State: domain.StateIdle})

	app := setupApp(session)
	req := httptest.NewRequest("POST", "/tracking/session", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decodeSnapshot(t, resp)
	assert.Equal(t, domain.StateIdle, snap.State)
	session.AssertExpectations(t)
}

func TestStartSessionRejectsMalformedBody(t *testing.T) {
	session := new(MockTrackingSession)

	app := setupApp(session)
	req := httptest.NewRequest("POST", "/tracking/session", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	session.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestStopSession(t *testing.T) {
	session := new(MockTrackingSession)
	session.On("Stop").Return()
	session.On("Snapshot").Return(domain.Snapshot{State: domain.StateIdle})

	app := setupApp(session)
	req := httptest.NewRequest("DELETE", "/tracking/session", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decodeSnapshot(t, resp)
	assert.Equal(t, domain.StateIdle, snap.State)
	session.AssertExpectations(t)
}

func TestGetSnapshot(t *testing.T) {
	session := new(MockTrackingSession)
	session.On("Snapshot").Return(domain.Snapshot{
		State:           domain.StateDelivered,
		Delivered:       true,
		ProgressPercent: 100,
		EstimatedTime:   "Arrived",
		ActiveStep:      domain.StepDelivered,
	})

	app := setupApp(session)
	req := httptest.NewRequest("GET", "/tracking/snapshot", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decodeSnapshot(t, resp)
	assert.True(t, snap.Delivered)
	assert.Equal(t, "Arrived", snap.EstimatedTime)
	assert.Equal(t, domain.StepDelivered, snap.ActiveStep)
	session.AssertExpectations(t)
}
