// internal/app/features/settings/handler.go
package settings

import (
	"context"
	"net/http"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/auditlog"
	"github.com/dalemusser/lawcrm/internal/app/system/limits"
	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"github.com/dalemusser/lawcrm/internal/domain/models"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
	"go.uber.org/zap"
)

const entity = "settings"

// Handler serves the singleton settings document.
type Handler struct {
	Store *docstore.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, audit logger and logger.
func NewHandler(store *docstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Audit: audit,
		Log:   logger,
	}
}

// Get returns the settings, creating the default document on first read.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Store.EnsureFirst(ctx, docstore.Settings, models.DefaultSettings())
	if err != nil {
		respond.Error(w, h.Log, entity, err)
		return
	}
	respond.JSON(w, http.StatusOK, doc)
}

// Put validates a full settings payload (absent fields take their
// defaults) and writes it over the singleton, creating it if needed.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	raw, err := schema.DecodeObject(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize))
	if err != nil {
		respond.Error(w, h.Log, entity, err)
		return
	}
	s, err := schema.Settings.Validate(raw)
	if err != nil {
		respond.Error(w, h.Log, entity, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.ReplaceFirst(ctx, docstore.Settings, s); err != nil {
		respond.Error(w, h.Log, entity, err)
		return
	}
	h.Audit.Record(r, auditlog.Event{Action: auditlog.ActionUpdate, Entity: entity})
	respond.JSON(w, http.StatusOK, map[string]bool{"updated": true})
}
