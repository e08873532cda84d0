package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"helpdesk-ai/internal/handlers"
	"helpdesk-ai/internal/service"
	"helpdesk-ai/internal/storage"
	"helpdesk-ai/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	VectorStore    vectorstore.VectorStore
	IngestionStore storage.IngestionStore
	CollectionName string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)
	statusHandler := handlers.NewStatusHandler(deps.IngestionStore, deps.CollectionName)

	// Primary chat endpoint plus the /api prefix for clients that expect it.
	r.Method(http.MethodPost, "/chat", chatHandler)
	r.Method(http.MethodGet, "/healthz", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodGet, "/status", statusHandler)
	})

	return r
}
