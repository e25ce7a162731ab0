package main

import (
	"context"
	"net/http"
	"time"

	_ "railway-planner/docs"
	"railway-planner/internal/config"
	"railway-planner/internal/handler"
	"railway-planner/internal/repository"
	"railway-planner/internal/service"
	"railway-planner/internal/session"
	"railway-planner/internal/sparql"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title		Railway journey planner API
// @version	1.0
// @BasePath	/api/v1
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	zerolog.SetGlobalLevel(config.Level())

	// SPARQL endpoints
	osmClient := sparql.NewClient(config.OSMEndpoint,
		sparql.WithTimeout(config.HTTPTimeout),
		sparql.WithUserAgent(config.UserAgent),
		sparql.WithCache(config.CacheSize, config.CacheTTL),
	)
	wikidataClient := sparql.NewClient(config.WikidataEndpoint,
		sparql.WithTimeout(config.HTTPTimeout),
		sparql.WithUserAgent(config.UserAgent),
		sparql.WithCache(config.CacheSize, config.CacheTTL),
	)

	// Optional search history
	var history *repository.HistoryRepository
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		history = repository.NewHistoryRepository(conn)
		if err := history.EnsureSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("search history disabled")
			history = nil
		}
		cancel()
	}

	// Initialize layers
	osmRepo := repository.NewOSMRepository(osmClient)
	wikidataRepo := repository.NewWikidataRepository(wikidataClient)

	var recorder service.HistoryRecorder
	if history != nil {
		recorder = history
	}
	journeyService := service.NewJourneyService(osmRepo, recorder, service.JourneyOptions{
		TransferCap:   config.TransferCap,
		DefaultRadius: config.SearchRadiusKm,
	})
	stationService := service.NewStationService(wikidataRepo)
	amenityService := service.NewAmenityService(osmRepo, config.SearchRadiusKm)

	journeyHandler := handler.NewJourneyHandler(journeyService)
	stationHandler := handler.NewStationHandler(stationService)
	amenityHandler := handler.NewAmenityHandler(amenityService)
	sessionHandler := handler.NewSessionHandler(session.NewStore(), journeyService, amenityService, session.Filters{RadiusKm: config.SearchRadiusKm})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/journeys", journeyHandler.Plan)
		api.GET("/journeys/direct", journeyHandler.Direct)
		api.GET("/journeys/transfer", journeyHandler.Transfer)
		api.GET("/routes/geometry", journeyHandler.RouteGeometry)
		api.GET("/stations/details", stationHandler.Details)
		api.GET("/amenities", amenityHandler.Nearby)

		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.DELETE("/sessions/:id", sessionHandler.Delete)
		api.POST("/sessions/:id/points", sessionHandler.AddPoint)
		api.DELETE("/sessions/:id/points", sessionHandler.ClearPoints)
		api.PUT("/sessions/:id/filters", sessionHandler.SetFilters)
		api.POST("/sessions/:id/search", sessionHandler.Search)
		api.GET("/sessions/:id/journey", sessionHandler.Journey)
		api.GET("/sessions/:id/amenities", sessionHandler.Amenities)

		if history != nil {
			api.GET("/history", handler.NewHistoryHandler(history).Recent)
		}
	}

	log.Info().
		Str("address", config.ServerAddress).
		Str("osm_endpoint", osmClient.Endpoint()).
		Str("wikidata_endpoint", wikidataClient.Endpoint()).
		Bool("history", history != nil).
		Msg("starting server")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
