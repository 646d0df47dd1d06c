package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clinic-faq/internal/handlers"
	"clinic-faq/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	FAQService service.FAQService
	AskService service.AskService
	DB         handlers.DBChecker
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	faqHandler := handlers.NewFAQHandler(deps.FAQService)
	askHandler := handlers.NewAskHandler(deps.AskService)
	pageHandler := handlers.NewPageHandler(deps.FAQService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/faqs", func(r chi.Router) {
		r.Post("/", faqHandler.Create)
		r.Get("/", faqHandler.List)
		r.Method(http.MethodPost, "/ask", askHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", faqHandler.Get)
			r.Patch("/", faqHandler.Update)
			r.Delete("/", faqHandler.Delete)
			r.Method(http.MethodGet, "/page", pageHandler)
		})
	})

	r.Method(http.MethodGet, "/health", healthHandler)
	r.Get("/health/db", healthHandler.Database)

	return r
}
