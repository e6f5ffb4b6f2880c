package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"

	"geospend-itinerary-service/internal/adapters/cache"
	"geospend-itinerary-service/internal/adapters/repositories"
	"geospend-itinerary-service/internal/adapters/routing"
	"geospend-itinerary-service/internal/api"
	"geospend-itinerary-service/internal/config"
	"geospend-itinerary-service/internal/platform/db"
	"geospend-itinerary-service/internal/platform/logging"
	"geospend-itinerary-service/internal/ports"
	"geospend-itinerary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, ORS) behind ports and
// starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	conn, err := openCatalogueDB(cfg)
	if err != nil {
		logger.Fatal("open catalogue database", zap.Error(err))
	}
	defer conn.Close()

	repo := repositories.NewSQLCatalogueRepository(conn, cfg.Planner.DefaultPopularity)

	// Road geometry is optional capability: without an ORS key the planner
	// still works and map paths degrade to straight segments.
	var routes ports.RouteGeometryProvider
	if cfg.ORSAPIKey != "" {
		var segmentCache *cache.RedisSegmentCache
		if cfg.RedisAddr != "" {
			client, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
			if err != nil {
				logger.Warn("redis unavailable, route segments will not be cached", zap.Error(err))
			} else {
				defer client.Close()
				segmentCache = cache.NewRedisSegmentCache(client, cache.DefaultSegmentTTL)
			}
		}

		provider, err := routing.NewORSRouteProvider(cfg.ORSAPIKey, segmentCache)
		if err != nil {
			logger.Fatal("create route provider", zap.Error(err))
		}
		routes = provider
	} else {
		logger.Info("ORS_API_KEY not set, itinerary paths use straight segments")
	}

	plannerCfg := plannerConfig(cfg)
	router := api.NewRouter(repo, routes, plannerCfg)

	logger.Info("server listening", zap.String("addr", ":"+cfg.Port))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// openCatalogueDB prefers Postgres when DATABASE_URL is set and otherwise
// runs on a local SQLite store, initializing and seeding it on startup.
func openCatalogueDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL != "" {
		return db.Open(cfg.DatabaseURL)
	}

	conn, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", cfg.DBPath, err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", cfg.DBPath, err)
	}

	if err := repositories.InitSchema(conn); err != nil {
		return nil, err
	}
	if err := repositories.SeedFromJSON(conn, cfg.SeedPath); err != nil {
		return nil, err
	}

	return conn, nil
}

func plannerConfig(cfg *config.Config) services.PlannerConfig {
	return services.PlannerConfig{
		RadiusKm:          cfg.Planner.RadiusKm,
		BudgetFraction:    cfg.Planner.BudgetFraction,
		DefaultPopularity: cfg.Planner.DefaultPopularity,
		FallbackMode:      cfg.Planner.FallbackMode,
		FarePerKm:         cfg.Planner.FarePerKm,
		MinutesPerKm:      cfg.Planner.MinutesPerKm,
		MinFare:           cfg.Planner.MinFare,
		MinMinutes:        cfg.Planner.MinMinutes,
		FallbackFare:      cfg.Planner.FallbackFare,
		FallbackMinutes:   cfg.Planner.FallbackMinutes,
	}
}
