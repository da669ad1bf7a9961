package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dourado/shopdash-backend/internal/config"
	"github.com/dourado/shopdash-backend/internal/handler"
	"github.com/dourado/shopdash-backend/internal/middleware"
	"github.com/dourado/shopdash-backend/internal/repository/postgres"
	"github.com/dourado/shopdash-backend/internal/repository/storage"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Create schema and seed the default identity
	if err := postgres.Migrate(context.Background(), pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash default password")
	}
	if err := postgres.Seed(context.Background(), pool, cfg.DefaultUsername, string(passwordHash)); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	// Initialize archive stores for backups
	localStore, err := storage.NewLocalArchiveStore(cfg.Backup.Dir, cfg.Backup.Retention)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create backup directory")
	}
	archiveStores := []storage.ArchiveStore{localStore}
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3ArchiveStore(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 archive store")
		}
		archiveStores = append(archiveStores, s3Store)
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("S3 backup uploads enabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo)
	saleService := service.NewSaleService(saleRepo)
	settingService := service.NewSettingService(settingRepo)
	dashboardService := service.NewDashboardService(saleRepo, settingService)
	exportService := service.NewExportService(saleService)
	backupService := service.NewBackupService(snapshotRepo, cfg.Backup.Hour, archiveStores...)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	saleHandler := handler.NewSaleHandler(saleService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	settingHandler := handler.NewSettingHandler(settingService)
	exportHandler := handler.NewExportHandler(exportService)
	backupHandler := handler.NewBackupHandler(backupService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, authHandler, profileHandler, saleHandler, dashboardHandler, settingHandler, exportHandler, backupHandler)

	// Serve the dashboard UI
	e.Static("/", cfg.StaticDir)

	// Daily backup scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go backupService.Start(schedulerCtx)
	log.Info().Int("hour", cfg.Backup.Hour).Msg("Backup scheduler started")

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
