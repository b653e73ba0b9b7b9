package analytics_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/features/analytics"
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/domain/models"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummary_Unavailable(t *testing.T) {
	h := analytics.Routes(analytics.NewHandler(docstore.New(nil, nil), zap.NewNop()))
	rec := testutil.Serve(h, testutil.NewRequest("GET", "/summary"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Database not available", testutil.Detail(t, rec))
}

func TestSummary(t *testing.T) {
	store := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	h := analytics.Routes(analytics.NewHandler(store, zap.NewNop()))

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/summary"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customers":0,"orders":0,"revenue":0,"top_products":[]}`, rec.Body.String())

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := store.Create(ctx, docstore.Orders, models.Order{
		CustomerID: "c1",
		Items:      []models.OrderItem{{ProductID: "p1", Quantity: 4, Price: 2.5}},
		Total:      10,
		Status:     models.OrderStatusPaid,
	})
	require.NoError(t, err)

	rec = testutil.Serve(h, testutil.NewRequest("GET", "/summary"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customers":0,"orders":1,"revenue":10,"top_products":[{"product_id":"p1","quantity":4}]}`, rec.Body.String())
}
