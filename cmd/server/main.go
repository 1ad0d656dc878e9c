package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helianthus/internal/adapters/primary/http/handlers"
	"helianthus/internal/adapters/primary/http/middleware"
	"helianthus/internal/adapters/secondary/postgres"
	"helianthus/internal/adapters/secondary/rediscache"
	"helianthus/internal/adapters/secondary/sqlite"
	"helianthus/internal/adapters/secondary/wikidata"
	"helianthus/internal/config"
	output "helianthus/internal/core/ports/output"
	"helianthus/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	var (
		artistRepo   output.ArtistRepository
		paintingRepo output.PaintingRepository
		locationRepo output.LocationRepository
		healthPing   func(context.Context) error
		closeStore   func()
	)

	switch cfg.Database.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open sqlite store: %v", err)
		}
		artistRepo = sqlite.NewArtistRepository(store)
		paintingRepo = sqlite.NewPaintingRepository(store)
		locationRepo = sqlite.NewLocationRepository(store)
		healthPing = func(context.Context) error { return store.Ping() }
		closeStore = func() { _ = store.Close() }
		log.WithField("path", cfg.Database.Path).Info("sqlite store opened")

	default:
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}

		artistRepo = postgres.NewArtistRepository(pool)
		paintingRepo = postgres.NewPaintingRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		healthPing = pool.Ping
		closeStore = pool.Close
		log.Info("database connection established")
	}
	defer closeStore()

	// Wikidata SPARQL client
	wikidataClient := wikidata.NewClient(&cfg.Wikidata)

	// Redis cache (optional - based on config)
	var responseCache output.Cache
	if cfg.Cache.Enabled {
		cache, err := rediscache.New(&cfg.Cache)
		if err != nil {
			log.Warnf("cache init failed (continuing without cache): %v", err)
		} else {
			responseCache = cache
			defer responseCache.Close()
			log.Info("response cache initialized")
		}
	} else {
		log.Info("response cache disabled")
	}

	// Core Services
	artistSvc := services.NewArtistService(artistRepo)
	paintingSvc := services.NewPaintingService(paintingRepo, artistRepo)
	locationSvc := services.NewLocationService(locationRepo, paintingRepo)
	ingestSvc := services.NewIngestService(artistRepo, paintingRepo, locationRepo, wikidataClient, responseCache)

	// HTTP Handlers
	h := handlers.New(artistSvc, paintingSvc, locationSvc, ingestSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/catalog")
	api.Use(middleware.CacheResponse(responseCache, cfg.Cache.TTL))
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := healthPing(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
