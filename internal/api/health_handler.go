package api

import (
	"net/http"

	"github.com/phrazzld/nursenote-api/internal/api/shared"
)

// HealthHandler handles GET /health and GET / with a fixed liveness body.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
