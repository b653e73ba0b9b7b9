package home_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/features/home"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServeRoot(t *testing.T) {
	h := home.Routes(home.NewHandler(zap.NewNop()))

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Legal Services CRM Backend is running"}`, rec.Body.String())
}
