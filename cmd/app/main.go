package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "hireflow/docs"

	"hireflow/cmd"
	httpadapter "hireflow/internal/adapters/in/http"
	"hireflow/internal/adapters/out/postgres"
	"hireflow/internal/adapters/out/redis"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	if _, err := httpadapter.LoadOpenAPIContract(ctx); err != nil {
		log.Fatalf("OpenAPI contract is invalid: %v", err)
	}

	db, err := postgres.OpenDatabase(configs.DBConnectionString(), postgres.PoolConfig{
		MaxOpenConns:    configs.DBMaxOpenConns,
		MaxIdleConns:    configs.DBMaxIdleConns,
		ConnMaxLifetime: configs.DBConnMaxLifetime,
		AcquireTimeout:  configs.DBAcquireTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	redisClient, err := redis.NewClient(ctx, configs.RedisURL, configs.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Error("Failed to close Redis client", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, db, redisClient, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		DBMaxOpenConns:       envIntVariable("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:       envIntVariable("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:    envDurationVariable("DB_CONN_MAX_LIFETIME"),
		DBAcquireTimeout:     envDurationVariable("DB_ACQUIRE_TIMEOUT"),
		RedisURL:             goDotEnvVariable("REDIS_URL"),
		RedisPoolSize:        envIntVariable("REDIS_POOL_SIZE"),
		RateLimitMaxRequests: int64(envIntVariable("RATE_LIMIT_MAX_REQUESTS")),
		RateLimitWindow:      envDurationVariable("RATE_LIMIT_WINDOW"),
		SessionTTL:           envDurationVariable("SESSION_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return value
}

func envDurationVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("%s must be a duration like 30s or 5m: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(httpadapter.RateLimitMiddleware(app.CreateRateLimiter(), httpadapter.RateLimitConfig{
		MaxRequests: configs.RateLimitMaxRequests,
		Window:      configs.RateLimitWindow,
	}))
	e.Use(httpadapter.SessionRefreshMiddleware(app.CreateSessionStore()))

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)
	httpadapter.RegisterOpenAPIRoute(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info("Shutting down HTTP server")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(timeoutCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
