package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"house-recommendation-api/internal/config"
	"house-recommendation-api/internal/handler"
	"house-recommendation-api/internal/logging"
	"house-recommendation-api/internal/repository"
	"house-recommendation-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

//	@title			House Recommendation API
//	@version		1.0
//	@description	Price-filtered nearest-neighbour house recommendations for Jabodetabek listings.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listing source
	var source service.ListingSource
	switch cfg.ListingSource {
	case config.SourcePostgres:
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		source = repository.NewPostgresRepository(conn)
	default:
		source = repository.NewHTTPRepository(cfg.ListingAPIURL, cfg.ListingAPITimeout)
	}
	cache := repository.NewCachedSource(source, cfg.ListingCacheTTL)

	// Initialize layers
	recommendationService := service.NewRecommendationService(cache, cfg.RecommendationLimit)
	listingService := service.NewListingService(cache)

	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	listingHandler := handler.NewListingHandler(listingService, cache)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           newRouter(recommendationHandler, listingHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.ServerAddress).
			Str("listing_source", cfg.ListingSource).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
