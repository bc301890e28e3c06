package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/nursenote-api/internal/api"
	apiMiddleware "github.com/phrazzld/nursenote-api/internal/api/middleware"
	"github.com/phrazzld/nursenote-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.CORS))

	noteHandler := api.NewNoteHandler(app.noteService)

	r.Get("/", api.HealthHandler)
	r.Get("/health", api.HealthHandler)
	r.Post("/generate", noteHandler.Generate)
	r.Post("/v2/generate", noteHandler.GenerateV2)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, api.MsgMethodNotAllowed)
	})

	return r
}
