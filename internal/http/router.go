package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fashionous/internal/catalog"
	"fashionous/internal/handlers"
	"fashionous/internal/orders"
	"fashionous/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Recommend service.RecommendService
	Orders    service.OrderService
	Catalog   *catalog.Catalog
	OrderLog  *orders.Log
	IndexHTML string // Embedded HTML content served at the root
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.Recommend)
	questionnaireHandler := handlers.NewQuestionnaireHandler(deps.Recommend)
	optionsHandler := handlers.NewOptionsHandler(deps.Recommend)
	startHandler := handlers.NewStartHandler()
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	healthHandler := handlers.NewHealthHandler(deps.Catalog, deps.OrderLog)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodPost, "/questionnaire", questionnaireHandler)
		r.Method(http.MethodGet, "/questionnaire_options", optionsHandler)
		r.Method(http.MethodPost, "/start", startHandler)
		r.Method(http.MethodPost, "/place_order", orderHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Product detail pages, rendered server-side
	r.Method(http.MethodGet, "/catalog/{id}", handlers.NewProductHandler(deps.Catalog))

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
