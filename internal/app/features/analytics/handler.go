// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"net/http"

	analyticsstore "github.com/dalemusser/lawcrm/internal/app/store/analytics"
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the analytics summary.
type Handler struct {
	Store *docstore.Store
	Log   *zap.Logger
}

func NewHandler(store *docstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// Summary handles GET /analytics/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	sum, err := analyticsstore.Summarize(ctx, h.Store, h.Log)
	if err != nil {
		respond.Error(w, h.Log, "analytics", err)
		return
	}
	respond.JSON(w, http.StatusOK, sum)
}
