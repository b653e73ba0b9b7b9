// internal/app/features/documents/routes.go
package documents

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the endpoints enabled by h.Entity.Ops.
func Routes[T any](h *Handler[T]) chi.Router {
	r := chi.NewRouter()
	ops := h.Entity.Ops
	if ops.Has(OpCreate) {
		r.Post("/", h.Create)
	}
	if ops.Has(OpList) {
		r.Get("/", h.List)
	}
	if ops.Has(OpGet) {
		r.Get("/{id}", h.Get)
	}
	if ops.Has(OpUpdate) {
		r.Put("/{id}", h.Update)
	}
	if ops.Has(OpDelete) {
		r.Delete("/{id}", h.Delete)
	}
	return r
}
