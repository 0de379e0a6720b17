// Package main is the entry point for the offer pricing service.
//
//	@title						Offer Pricing API
//	@version					1.0.0
//	@description				A flight offer search service that applies display pricing to provider fares and serves deterministic sample offers when no live provider is available.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-offers/offer-pricing-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-offers/offer-pricing-service/docs"

	offerhttp "github.com/travel-offers/offer-pricing-service/internal/adapter/http"
	"github.com/travel-offers/offer-pricing-service/internal/adapter/http/middleware"
	"github.com/travel-offers/offer-pricing-service/internal/adapter/provider/skylink"
	"github.com/travel-offers/offer-pricing-service/internal/config"
	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/cache"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/logger"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/ratelimit"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/timeutil"
	"github.com/travel-offers/offer-pricing-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "offer-pricing",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("live_provider", cfg.Provider.Enabled()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	searchCache := buildCache(cfg, log)
	defer searchCache.Close()

	uc := usecase.NewOfferUseCase(
		buildProvider(cfg, log),
		searchCache,
		buildLimiter(cfg),
		timeutil.NewRealClock(),
		log,
		&usecase.Config{ProviderTimeout: cfg.Timeouts.ProviderSearch},
	)

	handler := offerhttp.NewOfferHandler(uc)
	offerhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildProvider creates the live fare provider, or returns nil when no base
// URL is configured so the service runs in sample-only mode.
func buildProvider(cfg *config.Config, log *logger.Logger) domain.FareProvider {
	if !cfg.Provider.Enabled() {
		log.Info().Msg("No live provider configured, serving sample offers only")
		return nil
	}

	log.Info().Str("provider", skylink.ProviderName).Msg("Live provider enabled")
	return skylink.NewClient(skylink.Config{
		BaseURL:  cfg.Provider.BaseURL,
		APIToken: cfg.Provider.APIToken,
		Timeout:  cfg.Provider.Timeout,
	})
}

// buildCache creates the Redis search cache, falling back to a no-op cache
// when caching is disabled or Redis is unreachable.
func buildCache(cfg *config.Config, log *logger.Logger) cache.SearchCache {
	if !cfg.Cache.Enabled {
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Redis unreachable, caching disabled")
		return cache.NewNoOpCache()
	}

	log.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("Search cache enabled")
	return redisCache
}

// buildLimiter creates the provider rate limiter from config.
func buildLimiter(cfg *config.Config) *ratelimit.ProviderLimiter {
	return ratelimit.NewProviderLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
