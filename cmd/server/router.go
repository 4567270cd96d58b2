package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/todolist-api/internal/api"
	apiMiddleware "github.com/phrazzld/todolist-api/internal/api/middleware"
)

// maxRequestBodyBytes caps request bodies; the largest valid payload is a
// 16384-character description.
const maxRequestBodyBytes = 1 << 20

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(app.config.Server.WriteTimeout))
	r.Use(middleware.RequestSize(maxRequestBodyBytes))

	api.NewTodoHandler(app.todoService, app.logger).RegisterRoutes(r)
	api.NewHealthHandler(app.db).RegisterRoutes(r)

	return r
}
