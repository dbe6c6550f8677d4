package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/plan-a-meal/docs" // Swagger docs (generated)
	"github.com/redmonkez12/plan-a-meal/internal/auth"
	"github.com/redmonkez12/plan-a-meal/internal/config"
	"github.com/redmonkez12/plan-a-meal/internal/database"
	"github.com/redmonkez12/plan-a-meal/internal/food"
	httpServer "github.com/redmonkez12/plan-a-meal/internal/http"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/ratelimit"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

// @title           Plan-a-meal
// @version         1.0
// @description     Meal-planning REST API: food items with nutrition facts, users and bearer token authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"algorithm", cfg.Auth.Algorithm,
	)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Env,
		}); err != nil {
			return fmt.Errorf("failed to initialize sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()

	// Initialize database connection
	db, err := database.Open(ctx, cfg.Database.URL, database.PoolConfig{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Schema must be current before serving
	if err := database.Migrate(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("database migrations applied")

	// Initialize rate limiter
	var rateLimiter auth.RateLimiter = ratelimit.Noop{}
	if cfg.Redis.RateLimitEnabled() {
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		rateLimiter = ratelimit.NewLimiter(redisClient, cfg.Redis.LoginRateLimit, cfg.Redis.LoginRateWindow)
		logger.Info("login rate limiting enabled",
			"limit", cfg.Redis.LoginRateLimit,
			"window", cfg.Redis.LoginRateWindow.String(),
		)
	}

	// Initialize token service
	tokenService, err := auth.NewTokenService(cfg.Auth.Algorithm, []byte(cfg.Auth.SecretKey))
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	hasher := auth.NewArgon2Hasher(auth.DefaultArgon2Params)

	// Initialize repositories
	userRepo := user.NewRepository(db, cfg.Database.UserTableName)
	foodRepo := food.NewRepository(db, cfg.Database.FoodTableName)

	// Initialize services
	userService := user.NewService(userRepo, hasher, logger)
	foodService := food.NewService(foodRepo, logger)
	authService := auth.NewService(userRepo, hasher, tokenService, logger, cfg.Auth.AccessTokenDuration)

	// Initialize HTTP handlers
	handlers := httpServer.Handlers{
		Auth: auth.NewHandler(authService, rateLimiter),
		Food: food.NewHandler(foodService),
		User: user.NewHandler(userService),
	}
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize router
	router := httpServer.NewRouter(cfg, handlers, authMiddleware, db, logger)

	// Initialize HTTP server
	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initRedis connects to the Redis instance named by REDIS_URL
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
