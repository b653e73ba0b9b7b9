package home

import (
	"net/http"

	"github.com/dalemusser/lawcrm/internal/app/system/respond"
	"go.uber.org/zap"
)

// Message is the liveness text returned by GET /.
const Message = "Legal Services CRM Backend is running"

// Handler serves the root endpoint.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – liveness message                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"message": Message})
}
