package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ahsanlabs/storefront-service/config"
	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/handlers"
	"github.com/ahsanlabs/storefront-service/internal/media"
	"github.com/ahsanlabs/storefront-service/internal/middleware"
	"github.com/ahsanlabs/storefront-service/internal/telemetry"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting storefront service")

	ctx := context.Background()
	telemetryShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.Telemetry.Environment,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	catalogStore, err := catalog.NewFileStore(cfg.Storage.ProductsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open catalog store")
	}
	mediaStore, err := media.NewStore(cfg.Storage.ImagesPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open media store")
	}

	h := handlers.New(catalogStore, mediaStore)
	if cfg.Git.AutoCommit {
		h.OnCatalogWrite(func() { autoCommit(logger, cfg.Git.Message) })
	}

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Admin-API-Key", middleware.RequestIDKey},
		ExposeHeaders: []string{middleware.RequestIDKey},
		MaxAge:        12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})
	router.Use(middleware.RateLimitMiddleware(limiter))

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/images", cfg.Storage.ImagesPath)

	api := router.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/products", h.ReplaceProducts)
			admin.POST("/upload-image", h.UploadImage)
		}
	}

	// Drop stale per-IP limiters periodically
	limiterTicker := time.NewTicker(5 * time.Minute)
	go func() {
		for range limiterTicker.C {
			limiter.Reset()
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	limiterTicker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := telemetryShutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown telemetry")
	}

	logger.Info().Msg("Server exited")
}

// autoCommit pushes catalog changes to the deployment's git remote. A
// failure is logged and otherwise ignored; the write already succeeded.
func autoCommit(logger *zerolog.Logger, message string) {
	cmd := exec.Command("git", "add", "-A")
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("Git add failed")
		return
	}
	cmd = exec.Command("git", "commit", "-m", message)
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("Git commit failed")
		return
	}
	cmd = exec.Command("git", "push")
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("Git push failed")
		return
	}
	logger.Info().Msg("Git push successful")
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "storefront-service").Logger()
	return &logger
}
