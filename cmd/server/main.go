package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avosch/stock-dashboard-backend/internal/alphavantage"
	"github.com/avosch/stock-dashboard-backend/internal/api"
	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/config"
	"github.com/avosch/stock-dashboard-backend/internal/database"
	"github.com/avosch/stock-dashboard-backend/internal/fmp"
	"github.com/avosch/stock-dashboard-backend/internal/gemini"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
	"github.com/avosch/stock-dashboard-backend/internal/service"
	"github.com/avosch/stock-dashboard-backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	securityRepo := repository.NewSecurityRepository(db)
	eventRepo := repository.NewEventRepository(db)
	caseRepo := repository.NewCaseRepository(db)

	// Create provider clients
	yahooClient := yahoo.NewClient()
	fmpClient := fmp.NewClient(cfg.Providers.FMPAPIKey)
	alphaClient := alphavantage.NewClient(cfg.Providers.AlphaVantageAPIKey)
	geminiClient := gemini.NewClient(cfg.Providers.GeminiAPIKey)

	// One cache per payload type, all sharing the configured TTL
	quoteCache := cache.New[model.Quote](cfg.Cache.TTL)
	historyCache := cache.New[[]model.PricePoint](cfg.Cache.TTL)
	profileCache := cache.New[model.CompanyProfile](cfg.Cache.TTL)
	statementCache := cache.New[[]model.FinancialPeriodStatement](cfg.Cache.TTL)
	sentimentCache := cache.New[model.NewsSentiment](cfg.Cache.TTL)
	analysisCache := cache.New[model.AnalysisReport](cfg.Cache.TTL)

	// Create services
	services := api.Services{
		System:          service.NewSystemService(db),
		Security:        service.NewSecurityService(securityRepo, fmpClient, yahooClient, profileCache, historyCache),
		Event:           service.NewEventService(eventRepo, securityRepo),
		Case:            service.NewCaseService(caseRepo, securityRepo),
		Valuation:       service.NewValuationService(securityRepo, eventRepo, yahooClient, quoteCache),
		FinancialHealth: service.NewFinancialHealthService(fmpClient, statementCache),
		Sentiment:       service.NewSentimentService(alphaClient, sentimentCache),
		Analysis:        service.NewAnalysisService(securityRepo, geminiClient, analysisCache),
	}

	// Sweep expired cache entries hourly so long-idle keys do not pile up
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@hourly", func() {
		removed := quoteCache.Sweep() + historyCache.Sweep() + profileCache.Sweep() +
			statementCache.Sweep() + sentimentCache.Sweep() + analysisCache.Sweep()
		if removed > 0 {
			log.Printf("Cache sweep removed %d expired entries", removed)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule cache sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(services, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
