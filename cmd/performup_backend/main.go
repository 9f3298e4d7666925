package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"

	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	"github.com/kbouri/performup-platform-sub000/internal/core/services"
	"github.com/kbouri/performup-platform-sub000/internal/handlers"
	"github.com/kbouri/performup-platform-sub000/internal/middleware"
	"github.com/kbouri/performup-platform-sub000/internal/platform/config"
	"github.com/kbouri/performup-platform-sub000/internal/platform/metrics"
	"github.com/kbouri/performup-platform-sub000/internal/repositories/cache"
	"github.com/kbouri/performup-platform-sub000/internal/repositories/database/pgsql"
	"github.com/kbouri/performup-platform-sub000/pkg/database"
)

// @title PerformUp Ledger API
// @version 1.0
// @description Transaction journal, balances and reference numbers for the PerformUp platform.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	var balanceCache portsrepo.BalanceCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			// Balances are then always read from the ledger.
			logger.Warn("Balance cache disabled", slog.String("error", err.Error()))
		} else {
			defer closeRedis(logger, redisClient)
			balanceCache = cache.NewRedisBalanceCache(redisClient, cfg.BalanceCacheTTL)
			logger.Info("Balance cache enabled", slog.String("addr", cfg.RedisAddr))
		}
	}

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	repos := pgsql.NewRepositoryProvider(dbPool, balanceCache)
	serviceContainer := services.NewServiceContainer(cfg, repos, appMetrics)

	var writeLimiter *limiter.Limiter
	if cfg.WriteRateLimit != "" {
		writeLimiter, err = middleware.NewMemoryLimiter(cfg.WriteRateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.SecureHeaders(cfg.IsProduction),
		cors.New(corsConfig(cfg)),
		middleware.Metrics(appMetrics),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, writeLimiter); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSAllowedOrigins
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.ActorHeader, "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	return c
}

func closeRedis(logger *slog.Logger, client *redis.Client) {
	if err := client.Close(); err != nil {
		logger.Error("Error closing redis client", slog.String("error", err.Error()))
	}
}
