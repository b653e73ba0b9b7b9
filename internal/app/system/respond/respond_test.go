package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/paging"
	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"go.uber.org/zap"
)

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"unavailable", docstore.ErrStoreUnavailable, http.StatusInternalServerError, "Database not available"},
		{"invalid id", docstore.ErrInvalidIdentifier, http.StatusBadRequest, "Invalid customer id"},
		{"not found", fmt.Errorf("wrapped: %w", docstore.ErrNotFound), http.StatusNotFound, "Customer not found"},
		{"other", errors.New("socket closed"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, zap.NewNop(), "customer", tt.err)
			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type: got %q, want application/json", ct)
			}
			if got := testutil.Detail(t, rec); got != tt.detail {
				t.Errorf("detail: got %q, want %q", got, tt.detail)
			}
		})
	}
}

func TestError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	verr := &schema.ValidationError{Errors: []schema.FieldError{{Field: "email", Message: "Invalid email format"}}}
	respond.Error(rec, nil, "customer", verr)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	var body struct {
		Detail []schema.FieldError `json:"detail"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if !reflect.DeepEqual(body.Detail, verr.Errors) {
		t.Errorf("detail: got %v, want %v", body.Detail, verr.Errors)
	}
}

func TestError_InvalidLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, nil, "order", paging.ErrInvalidLimit)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), `"field":"limit"`) {
		t.Errorf("body missing limit field: %s", rec.Body.String())
	}
}
