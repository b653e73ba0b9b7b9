// internal/app/system/respond/respond.go

// Package respond writes JSON responses and maps store and validation
// errors to HTTP status codes. Error bodies are {"detail": ...}.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/paging"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
	"go.uber.org/zap"
)

// Messages returned to clients.
const (
	MsgDatabaseUnavailable = "Database not available"
	MsgInternal            = "Internal server error"
)

type detailBody struct {
	Detail any `json:"detail"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes {"detail": msg}.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, detailBody{Detail: msg})
}

// Validation writes a 422 listing every field violation.
func Validation(w http.ResponseWriter, verr *schema.ValidationError) {
	errs := verr.Errors
	if errs == nil {
		errs = []schema.FieldError{}
	}
	JSON(w, http.StatusUnprocessableEntity, detailBody{Detail: errs})
}

// Error maps err to a response. entity names the record kind in client
// messages ("customer" gives "Invalid customer id" and "Customer not
// found"). Unrecognized errors are logged and reported without detail.
func Error(w http.ResponseWriter, log *zap.Logger, entity string, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		Validation(w, verr)
	case errors.Is(err, paging.ErrInvalidLimit):
		Validation(w, &schema.ValidationError{Errors: []schema.FieldError{
			{Field: "limit", Message: "Must be a positive integer"},
		}})
	case errors.Is(err, docstore.ErrStoreUnavailable):
		Detail(w, http.StatusInternalServerError, MsgDatabaseUnavailable)
	case errors.Is(err, docstore.ErrInvalidIdentifier):
		Detail(w, http.StatusBadRequest, "Invalid "+entity+" id")
	case errors.Is(err, docstore.ErrNotFound):
		Detail(w, http.StatusNotFound, capitalize(entity)+" not found")
	default:
		if log != nil {
			log.Error("request failed", zap.String("entity", entity), zap.Error(err))
		}
		Detail(w, http.StatusInternalServerError, MsgInternal)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
