package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"companion-backend/internal/handlers"
	"companion-backend/internal/middleware"
	"companion-backend/internal/web"
)

func New(chatHandler *handlers.ChatHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/health", handlers.Health)

	r.Get("/", web.Index)
	r.Post("/chat", chatHandler.Chat)
	r.Get("/crisis_resources", handlers.CrisisResources)

	return r
}
