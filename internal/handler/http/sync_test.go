package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/models"
)

// stubSyncService records the last trigger options and returns canned
// responses.
type stubSyncService struct {
	lastOpts service.RunOptions

	runID      string
	triggerErr error

	statuses  []models.SyncStatus
	statusErr error
}

func (s *stubSyncService) Trigger(_ context.Context, opts service.RunOptions) (string, error) {
	s.lastOpts = opts
	if s.triggerErr != nil {
		return "", s.triggerErr
	}
	return s.runID, nil
}

func (s *stubSyncService) Status(context.Context) ([]models.SyncStatus, error) {
	return s.statuses, s.statusErr
}

func newTestServer(t *testing.T, svc SyncService) *httptest.Server {
	t.Helper()

	h := NewHandler(svc, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestTriggerSync_Accepted(t *testing.T) {
	stub := &stubSyncService{runID: "run-123"}
	srv := newTestServer(t, stub)

	resp, err := http.Post(srv.URL+"/api/sync/", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body triggerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "run-123", body.RunID)

	assert.Empty(t, stub.lastOpts.Entities)
	assert.False(t, stub.lastOpts.Full)
}

func TestTriggerSync_QueryParams(t *testing.T) {
	stub := &stubSyncService{runID: "run-123"}
	srv := newTestServer(t, stub)

	resp, err := http.Post(srv.URL+"/api/sync/?entity=projects&entity=hours&full=true", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []string{"projects", "hours"}, stub.lastOpts.Entities)
	assert.True(t, stub.lastOpts.Full)
}

func TestTriggerSync_InvalidFullParam(t *testing.T) {
	srv := newTestServer(t, &stubSyncService{runID: "run-123"})

	resp, err := http.Post(srv.URL+"/api/sync/?full=sure", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTriggerSync_RunInProgress(t *testing.T) {
	srv := newTestServer(t, &stubSyncService{triggerErr: service.ErrRunInProgress})

	resp, err := http.Post(srv.URL+"/api/sync/", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestTriggerSync_UnknownEntity(t *testing.T) {
	srv := newTestServer(t, &stubSyncService{triggerErr: service.ErrUnknownEntity})

	resp, err := http.Post(srv.URL+"/api/sync/?entity=companies", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSyncStatus_ReturnsRows(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	stub := &stubSyncService{
		statuses: []models.SyncStatus{
			{Entity: models.EntityProjects, LastSyncAt: &at, LastSyncCount: 12, LastSyncStatus: models.SyncStatusSuccess},
			{Entity: models.EntityHours, LastSyncStatus: models.SyncStatusPending},
		},
	}
	srv := newTestServer(t, stub)

	resp, err := http.Get(srv.URL + "/api/sync/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.SyncStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body, 2)
	assert.Equal(t, models.EntityProjects, body[0].Entity)
	assert.Equal(t, 12, body[0].LastSyncCount)
	assert.Equal(t, models.SyncStatusPending, body[1].LastSyncStatus)
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := newTestServer(t, &stubSyncService{})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
