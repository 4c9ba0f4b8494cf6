package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medroute/hospital-finder/internal/adapters/cache"
	"github.com/medroute/hospital-finder/internal/adapters/database"
	"github.com/medroute/hospital-finder/internal/api/handlers"
	"github.com/medroute/hospital-finder/internal/api/middleware"
	"github.com/medroute/hospital-finder/internal/api/routes"
	"github.com/medroute/hospital-finder/internal/application/services"
	"github.com/medroute/hospital-finder/internal/chat"
	"github.com/medroute/hospital-finder/internal/domain/providers"
	"github.com/medroute/hospital-finder/internal/infrastructure/clients/postgres"
	"github.com/medroute/hospital-finder/internal/infrastructure/clients/redis"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
	"github.com/medroute/hospital-finder/internal/ranking"
	"github.com/medroute/hospital-finder/internal/triage"
	"github.com/medroute/hospital-finder/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client; the service degrades gracefully without it
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	hospitalRepo := database.NewHospitalAdapter(pgClient)

	// Initialize services
	hospitalService := services.NewHospitalService(hospitalRepo, triage.NewAnalyzer(), ranking.NewRanker())
	hospitalService.SetMetrics(metrics)
	hospitalService.SetSearchRadii(cfg.Search.MaxRadiusKm, cfg.Search.EmergencyMaxRadiusKm)

	var sessionService *services.SessionService
	if cacheProvider != nil {
		sessionService = services.NewSessionService(cacheProvider, cfg.Search.SessionTTLSeconds)
		hospitalService.SetSessionService(sessionService)
		logger.Info().Msg("session capture enabled")
	}

	responder := chat.NewResponder(time.Now().UnixNano())

	// Initialize handlers
	triageHandler := handlers.NewTriageHandler(hospitalService, cfg.Search.MaxResults, cfg.Search.EmergencyMaxResults)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	chatHandler := handlers.NewChatHandler(responder, sessionService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	// Set up router
	router := routes.NewRouter(
		triageHandler,
		hospitalHandler,
		chatHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
