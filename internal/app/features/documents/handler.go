// internal/app/features/documents/handler.go
package documents

import (
	"context"
	"net/http"
	"sort"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/auditlog"
	"github.com/dalemusser/lawcrm/internal/app/system/limits"
	"github.com/dalemusser/lawcrm/internal/app/system/paging"
	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Handler serves the CRUD endpoints of one entity.
type Handler[T any] struct {
	Entity Entity[T]
	Store  *docstore.Store
	Audit  *auditlog.Logger
	Log    *zap.Logger
}

func NewHandler[T any](entity Entity[T], store *docstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler[T] {
	return &Handler[T]{
		Entity: entity,
		Store:  store,
		Audit:  audit,
		Log:    logger,
	}
}

func (h *Handler[T]) fail(w http.ResponseWriter, err error) {
	respond.Error(w, h.Log, h.Entity.Label, err)
}

func (h *Handler[T]) decode(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	return schema.DecodeObject(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST / – validate, apply defaults, insert                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler[T]) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := h.decode(w, r)
	if err != nil {
		h.fail(w, err)
		return
	}
	rec, err := h.Entity.Schema.Validate(raw)
	if err != nil {
		h.fail(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Create(ctx, h.Entity.Collection, rec)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.Audit.Record(r, auditlog.Event{Action: auditlog.ActionCreate, Entity: h.Entity.Label, ID: id})
	respond.JSON(w, http.StatusOK, map[string]string{"id": id})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – capped list with optional exact-match filters                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler[T]) List(w http.ResponseWriter, r *http.Request) {
	limit, err := paging.ParseLimit(r, h.Entity.ListLimit)
	if err != nil {
		h.fail(w, err)
		return
	}
	filter := docstore.Filter{}
	for _, name := range h.Entity.Filters {
		if v := query.Get(r, name); v != "" {
			filter[name] = v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx, h.Entity.Collection, filter, limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, docs)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /{id}                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler[T]) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Store.Get(ctx, h.Entity.Collection, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, doc)
}

/*─────────────────────────────────────────────────────────────────────────────*
| PUT /{id} – partial update; present fields are validated and merged        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler[T]) Update(w http.ResponseWriter, r *http.Request) {
	if !h.Store.Available() {
		h.fail(w, docstore.ErrStoreUnavailable)
		return
	}
	raw, err := h.decode(w, r)
	if err != nil {
		h.fail(w, err)
		return
	}
	fields, err := h.Entity.Schema.ValidatePartial(raw)
	if err != nil {
		h.fail(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Store.Update(ctx, h.Entity.Collection, id, bson.M(fields)); err != nil {
		h.fail(w, err)
		return
	}
	h.Audit.Record(r, auditlog.Event{Action: auditlog.ActionUpdate, Entity: h.Entity.Label, ID: id, Fields: sortedFields(fields)})
	respond.JSON(w, http.StatusOK, map[string]bool{"updated": true})
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /{id}                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Store.Delete(ctx, h.Entity.Collection, id); err != nil {
		h.fail(w, err)
		return
	}
	h.Audit.Record(r, auditlog.Event{Action: auditlog.ActionDelete, Entity: h.Entity.Label, ID: id})
	respond.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func sortedFields(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
