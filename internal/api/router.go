package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avosch/stock-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/avosch/stock-dashboard-backend/internal/api/middleware"
	"github.com/avosch/stock-dashboard-backend/internal/config"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System          *service.SystemService
	Security        *service.SecurityService
	Event           *service.EventService
	Case            *service.CaseService
	Valuation       *service.ValuationService
	FinancialHealth *service.FinancialHealthService
	Sentiment       *service.SentimentService
	Analysis        *service.AnalysisService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/securities", func(r chi.Router) {
			securityHandler := handlers.NewSecurityHandler(svc.Security)
			r.Get("/", securityHandler.ListSecurities)
			r.Post("/", securityHandler.CreateSecurity)

			r.Route("/{ticker}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTickerMiddleware)
				r.Get("/", securityHandler.GetSecurity)
				r.Put("/", securityHandler.UpdateSecurity)
				r.Delete("/", securityHandler.DeleteSecurity)
				r.Get("/profile", securityHandler.GetProfile)
				r.Get("/history", securityHandler.GetHistory)
			})
		})

		r.Route("/events", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(svc.Event)
			r.Post("/", eventHandler.CreateEvent)

			r.Route("/security/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", eventHandler.EventsPerSecurity)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", eventHandler.GetEvent)
				r.Put("/", eventHandler.UpdateEvent)
				r.Delete("/", eventHandler.DeleteEvent)
			})
		})

		r.Route("/cases/{ticker}", func(r chi.Router) {
			caseHandler := handlers.NewCaseHandler(svc.Case)
			r.Use(custommiddleware.ValidateTickerMiddleware)
			r.Get("/", caseHandler.GetCase)
			r.Put("/", caseHandler.SaveCase)
		})

		r.Route("/valuation/{ticker}", func(r chi.Router) {
			valuationHandler := handlers.NewValuationHandler(svc.Valuation)
			r.Use(custommiddleware.ValidateTickerMiddleware)
			r.Get("/", valuationHandler.GetValuation)
		})

		r.Route("/financial-health/{ticker}", func(r chi.Router) {
			healthHandler := handlers.NewFinancialHealthHandler(svc.FinancialHealth)
			r.Use(custommiddleware.ValidateTickerMiddleware)
			r.Get("/", healthHandler.GetFinancialHealth)
		})

		r.Route("/news-sentiment/{ticker}", func(r chi.Router) {
			sentimentHandler := handlers.NewSentimentHandler(svc.Sentiment)
			r.Use(custommiddleware.ValidateTickerMiddleware)
			r.Get("/", sentimentHandler.GetNewsSentiment)
		})

		r.Route("/analysis/{ticker}", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(svc.Analysis)
			r.Use(custommiddleware.ValidateTickerMiddleware)
			r.Get("/", analysisHandler.GetAnalysis)
		})
	})

	return r
}
