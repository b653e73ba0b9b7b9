package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/features/health"
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message"`
}

func TestServe_DatabaseConnected(t *testing.T) {
	store := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	handler := health.NewHandler(store, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response healthBody
	testutil.DecodeJSON(t, rec, &response)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "connected", response.Database)
}

func TestServe_NoDatabase(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	handler := health.NewHandler(docstore.New(nil, nil), zap.New(core))

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response healthBody
	testutil.DecodeJSON(t, rec, &response)
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "disconnected", response.Database)
	assert.Equal(t, "Database unavailable", response.Message)

	// The store error stays in the log.
	var raw map[string]any
	testutil.DecodeJSON(t, rec, &raw)
	assert.NotContains(t, raw, "error")

	entries := logs.FilterMessage("health-check: mongo ping failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, docstore.ErrStoreUnavailable.Error(), entries[0].ContextMap()["error"])
}
