package server

import (
	"log/slog"
	"net/http"

	"github.com/alfagnish/demoapi/internal/config"
	"github.com/alfagnish/demoapi/internal/handlers"
	"github.com/alfagnish/demoapi/internal/middleware"
	"github.com/alfagnish/demoapi/internal/payments"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.LimitBody(cfg.MaxBodyBytes))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// ── Payments backend ────────────────────────────────────
	pc := cfg.Payments
	processor := payments.NewProcessor(payments.Options{
		ProcessorDelay: pc.ProcessorDelay,
		FetchCount:     pc.FetchCount,
		LogLines:       pc.LogLines,
	}, payments.NewDirectory(pc.FetchDelay))
	history := payments.NewHistory(pc.HistorySize)

	// ── Handlers ────────────────────────────────────────────
	systemH := handlers.NewSystemHandler(cfg)
	usersH := handlers.NewUsersHandler(logger)
	analyticsH := handlers.NewAnalyticsHandler(logger)
	paymentsH := handlers.NewPaymentsHandler(logger, processor, history)

	// ── Route groups ────────────────────────────────────────
	r.Group(systemH.Routes)
	r.Route("/api/users", usersH.Routes)
	r.Route("/api/analytics", analyticsH.Routes)
	r.Route("/api/payments", paymentsH.Routes)

	return r
}
