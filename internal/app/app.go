package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/propchart-api/internal/config"
	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
	cacherepo "github.com/riskibarqy/propchart-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/propchart-api/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/propchart-api/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/propchart-api/internal/platform/cache"
	"github.com/riskibarqy/propchart-api/internal/platform/logging"
	"github.com/riskibarqy/propchart-api/internal/usecase"
)

const (
	redisKeyPrefix = "propchart:"
	warmupTimeout  = 2 * time.Minute
)

// NewHTTPServer wires the data source, repositories, services and router.
// The returned cleanup func releases the database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	registry := sport.DefaultRegistry()
	if err := registry.ApplyFeatures(cfg.SportFeatures); err != nil {
		return nil, nil, fmt.Errorf("apply SPORT_FEATURES: %w", err)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	guard := newDBGuard(cfg, logger)
	gameLogRepo := postgres.NewGameLogRepository(db, guard)
	averageRepo := postgres.NewSeasonAverageRepository(db, guard)
	gameRepo := postgres.NewGameRepository(db, guard)
	var playerRepo player.Repository = postgres.NewPlayerRepository(db, guard)
	var teamRepo team.Repository = postgres.NewTeamRepository(db, guard)

	var redisClient *redis.Client
	if cfg.CacheEnabled {
		var remote basecache.Remote
		if cfg.RedisEnabled {
			redisClient, err = basecache.NewRedisClient(ctx, cfg.RedisURL)
			if err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("connect redis: %w", err)
			}
			remote = basecache.NewRedisRemote(redisClient, redisKeyPrefix)
		}
		store := basecache.NewStore(cfg.CacheTTL, remote)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, store)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		logger.Info("reference cache enabled", "ttl", cfg.CacheTTL.String(), "redis", cfg.RedisEnabled)
	}

	catalog := usecase.NewSportCatalog(registry)
	gameLogSvc := usecase.NewGameLogService(gameLogRepo, cfg.StatsMaxWindow)
	statsSvc := usecase.NewStatsService(
		gameLogSvc,
		usecase.NewSeasonAverageService(averageRepo),
		usecase.NewCareerAverageService(gameLogRepo),
	)

	handler := httpapi.NewHandler(
		catalog,
		usecase.NewPlayerService(playerRepo),
		usecase.NewOpponentService(gameLogRepo, teamRepo),
		statsSvc,
		gameLogSvc,
		usecase.NewGameService(gameRepo),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.RequestTimeout)

	if cfg.CacheEnabled && cfg.CacheWarmupEnabled {
		warmer := usecase.NewCatalogWarmer(catalog, playerRepo, cfg.CacheWarmupWorkers, logger)
		go runWarmup(warmer, logger)
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func(context.Context) error {
		var errs []error
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close redis: %w", err))
			}
		}
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		return errors.Join(errs...)
	}

	return server, cleanup, nil
}

func runWarmup(warmer *usecase.CatalogWarmer, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	if _, err := warmer.Warm(ctx); err != nil {
		logger.Warn("cache warmup failed", "error", err)
	}
}
