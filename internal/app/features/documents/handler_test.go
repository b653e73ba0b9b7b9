package documents_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/features/documents"
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/auditlog"
	"github.com/dalemusser/lawcrm/internal/domain/models"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func customersRouter(store *docstore.Store) http.Handler {
	return documents.Routes(documents.NewHandler(documents.Customers, store, nil, zap.NewNop()))
}

func liveStore(t *testing.T) *docstore.Store {
	t.Helper()
	return docstore.New(testutil.SetupTestDB(t), zap.NewNop())
}

func createID(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	rec := testutil.Serve(h, testutil.NewJSONRequest("POST", "/", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rec, &out)
	require.Len(t, out.ID, 24)
	return out.ID
}

func TestOps(t *testing.T) {
	assert.True(t, documents.Customers.Ops.Has(documents.OpDelete))
	assert.False(t, documents.Products.Ops.Has(documents.OpGet))
	assert.True(t, documents.Products.Ops.Has(documents.OpCreate|documents.OpList|documents.OpUpdate))
	assert.False(t, documents.Orders.Ops.Has(documents.OpUpdate))
	assert.Equal(t, documents.OpCreate|documents.OpList, documents.FactFinds.Ops)
}

/* ----------------------------- no database ----------------------------- */

func TestUnavailable(t *testing.T) {
	h := customersRouter(docstore.New(nil, nil))
	id := "507f1f77bcf86cd799439011"

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"create", testutil.NewJSONRequest("POST", "/", `{"name":"A","email":"a@example.com"}`)},
		{"list", testutil.NewRequest("GET", "/")},
		{"get", testutil.NewRequest("GET", "/"+id)},
		{"get malformed id", testutil.NewRequest("GET", "/zzz")},
		{"update invalid body", testutil.NewJSONRequest("PUT", "/"+id, `{"bogus":1}`)},
		{"delete", testutil.NewRequest("DELETE", "/"+id)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.Serve(h, tt.req)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Database not available", testutil.Detail(t, rec))
		})
	}
}

func TestCreate_ValidationBeforeStore(t *testing.T) {
	h := customersRouter(docstore.New(nil, nil))

	rec := testutil.Serve(h, testutil.NewJSONRequest("POST", "/", `{"email":"nope"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	testutil.DecodeJSON(t, rec, &body)
	fields := map[string]string{}
	for _, d := range body.Detail {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestCreate_MalformedBody(t *testing.T) {
	h := customersRouter(docstore.New(nil, nil))
	for _, body := range []string{"", "{", "[]", `{"name":"A","email":"a@example.com"} trailing`} {
		rec := testutil.Serve(h, testutil.NewJSONRequest("POST", "/", body))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %q", body)
	}
}

func TestList_BadLimit(t *testing.T) {
	h := customersRouter(docstore.New(nil, nil))
	for _, q := range []string{"0", "-1", "ten"} {
		rec := testutil.Serve(h, testutil.NewRequest("GET", "/?limit="+q))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "limit=%s", q)
	}
}

func TestRoutes_DisabledOps(t *testing.T) {
	h := documents.Routes(documents.NewHandler(documents.Orders, docstore.New(nil, nil), nil, zap.NewNop()))
	rec := testutil.Serve(h, testutil.NewRequest("DELETE", "/507f1f77bcf86cd799439011"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

/* ------------------------------ live MongoDB ----------------------------- */

func TestCustomer_Lifecycle(t *testing.T) {
	h := customersRouter(liveStore(t))

	id := createID(t, h, `{"name":"Ada","email":"ada@example.com","ignored":"x"}`)

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/"+id))
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	testutil.DecodeJSON(t, rec, &got)
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "Ada", got["name"])
	assert.Equal(t, models.CustomerStatusActive, got["status"])
	assert.Nil(t, got["phone"])
	assert.NotContains(t, got, "_id")
	assert.NotContains(t, got, "ignored")

	rec = testutil.Serve(h, testutil.NewJSONRequest("PUT", "/"+id, `{"status":"archived","notes":"moved"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":true}`, rec.Body.String())

	rec = testutil.Serve(h, testutil.NewRequest("GET", "/"+id))
	testutil.DecodeJSON(t, rec, &got)
	assert.Equal(t, "archived", got["status"])
	assert.Equal(t, "moved", got["notes"])
	assert.Equal(t, "Ada", got["name"])

	rec = testutil.Serve(h, testutil.NewRequest("DELETE", "/"+id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = testutil.Serve(h, testutil.NewRequest("GET", "/"+id))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", testutil.Detail(t, rec))

	rec = testutil.Serve(h, testutil.NewRequest("DELETE", "/"+id))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomer_Errors(t *testing.T) {
	h := customersRouter(liveStore(t))

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/not-an-id"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid customer id", testutil.Detail(t, rec))

	rec = testutil.Serve(h, testutil.NewJSONRequest("PUT", "/507f1f77bcf86cd799439011", `{"status":"lead"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	id := createID(t, h, `{"name":"B","email":"b@example.com"}`)
	rec = testutil.Serve(h, testutil.NewJSONRequest("PUT", "/"+id, `{"status":"gone","nickname":"x"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"nickname"`)
}

func TestList_LimitAndDefault(t *testing.T) {
	h := customersRouter(liveStore(t))

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	for i := 0; i < 3; i++ {
		createID(t, h, `{"name":"C","email":"c@example.com"}`)
	}
	rec = testutil.Serve(h, testutil.NewRequest("GET", "/?limit=2"))
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]any
	testutil.DecodeJSON(t, rec, &docs)
	assert.Len(t, docs, 2)
}

func TestFactFinds_CustomerFilter(t *testing.T) {
	h := documents.Routes(documents.NewHandler(documents.FactFinds, liveStore(t), nil, zap.NewNop()))

	createID(t, h, `{"customer_id":"c1","responses":{"q1":"yes"}}`)
	createID(t, h, `{"customer_id":"c1"}`)
	createID(t, h, `{"customer_id":"c2"}`)

	var docs []map[string]any
	rec := testutil.Serve(h, testutil.NewRequest("GET", "/?customer_id=c1"))
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.DecodeJSON(t, rec, &docs)
	assert.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "c1", d["customer_id"])
	}

	rec = testutil.Serve(h, testutil.NewRequest("GET", "/"))
	testutil.DecodeJSON(t, rec, &docs)
	assert.Len(t, docs, 3)
}

func TestOrders_CreateGet(t *testing.T) {
	h := documents.Routes(documents.NewHandler(documents.Orders, liveStore(t), nil, zap.NewNop()))

	id := createID(t, h, `{"customer_id":"c1","total":25,"items":[{"product_id":"p1","price":12.5,"quantity":2}]}`)

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/"+id))
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		ID     string             `json:"id"`
		Status string             `json:"status"`
		Total  float64            `json:"total"`
		Items  []models.OrderItem `json:"items"`
	}
	testutil.DecodeJSON(t, rec, &got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, 25.0, got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, models.OrderItem{ProductID: "p1", Quantity: 2, Price: 12.5}, got.Items[0])

	rec = testutil.Serve(h, testutil.NewRequest("GET", "/507f1f77bcf86cd799439011"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", testutil.Detail(t, rec))
}

func TestProducts_Update(t *testing.T) {
	h := documents.Routes(documents.NewHandler(documents.Products, liveStore(t), nil, zap.NewNop()))

	id := createID(t, h, `{"title":"Will Writing","price":150}`)

	rec := testutil.Serve(h, testutil.NewJSONRequest("PUT", "/"+id, `{"price":175.5,"in_stock":false}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Serve(h, testutil.NewJSONRequest("PUT", "/"+id, `{"price":-1}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = testutil.Serve(h, testutil.NewJSONRequest("PUT", "/bad", `{"price":1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid product id", testutil.Detail(t, rec))

	var docs []map[string]any
	rec = testutil.Serve(h, testutil.NewRequest("GET", "/"))
	testutil.DecodeJSON(t, rec, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, 175.5, docs[0]["price"])
	assert.Equal(t, false, docs[0]["in_stock"])
	assert.Equal(t, models.ProductCategoryService, docs[0]["category"])
}

func TestAudit_RecordsWrites(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := documents.Routes(documents.NewHandler(documents.Customers, liveStore(t), auditlog.New(zap.New(core)), zap.NewNop()))

	id := createID(t, h, `{"name":"A","email":"a@example.com"}`)
	rec := testutil.Serve(h, testutil.NewJSONRequest("PUT", "/"+id, `{"status":"lead","notes":"x"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = testutil.Serve(h, testutil.NewRequest("DELETE", "/"+id))
	require.Equal(t, http.StatusOK, rec.Code)
	// Failed writes are not audited.
	testutil.Serve(h, testutil.NewRequest("DELETE", "/"+id))

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "create", entries[0].ContextMap()["action"])
	assert.Equal(t, id, entries[0].ContextMap()["id"])
	assert.Equal(t, []any{"notes", "status"}, entries[1].ContextMap()["fields"])
	assert.Equal(t, "delete", entries[2].ContextMap()["action"])
}
