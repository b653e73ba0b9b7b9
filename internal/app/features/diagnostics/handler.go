// internal/app/features/diagnostics/handler.go
package diagnostics

import (
	"context"
	"net/http"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	maxCollections = 10
	maxErrorLen    = 80
)

// Handler reports backend and database status for GET /test. It always
// answers 200; problems are described in the body.
type Handler struct {
	Store *docstore.Store
	// URLSet and NameSet record whether the connection settings were
	// configured, independent of whether connecting succeeded.
	URLSet  bool
	NameSet bool
	Log     *zap.Logger
}

func NewHandler(store *docstore.Store, urlSet, nameSet bool, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		URLSet:  urlSet,
		NameSet: nameSet,
		Log:     logger,
	}
}

// Report is the /test response body.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func setFlag(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate shortens s to n characters (runes, not bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Serve handles GET /test.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	rep := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setFlag(h.URLSet),
		DatabaseName:     setFlag(h.NameSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store.Available() {
		rep.Database = "✅ Connected"
		rep.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		names, err := h.Store.CollectionNames(ctx)
		if err != nil {
			h.Log.Warn("diagnostics: list collections failed", zap.Error(err))
			rep.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxErrorLen)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			rep.Collections = names
			rep.Database = "✅ Connected & Working"
		}
	}

	respond.JSON(w, http.StatusOK, rep)
}
