package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/nursenote-api/internal/api/shared"
	"github.com/phrazzld/nursenote-api/internal/config"
)

// CORS returns the cross-origin middleware for the configured origins.
// A wildcard origin never allows credentials.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}

	if cfg.AllowsAnyOrigin() {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowCredentials = true
	}

	return cors.Handler(opts)
}
