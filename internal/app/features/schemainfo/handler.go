// internal/app/features/schemainfo/handler.go
package schemainfo

import (
	"net/http"

	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/domain/schema"
	"github.com/go-chi/chi/v5"
)

// Serve handles GET /schema: the description of every entity, keyed by
// its API name.
func Serve(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, schema.Describe())
}

// Routes returns a subrouter mounted under /schema.
func Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", Serve)
	return r
}
