package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/twocngdagz/lush-sub001/internal/config"
	"github.com/twocngdagz/lush-sub001/internal/connector"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/lush"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/mock"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/realwin"
	"github.com/twocngdagz/lush-sub001/internal/database"
	"github.com/twocngdagz/lush-sub001/internal/handlers"
	"github.com/twocngdagz/lush-sub001/internal/logging"
	"github.com/twocngdagz/lush-sub001/internal/middleware"
	"github.com/twocngdagz/lush-sub001/internal/routes"
	"github.com/twocngdagz/lush-sub001/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Origin connector: bound once for the process lifetime. An unknown
	// identifier must stop the process before it serves anything.
	vendorClient := &http.Client{Timeout: cfg.VendorTimeout}
	conn, err := connector.New(cfg.ConnectorID, vendorClient)
	if err != nil {
		slog.Error("connector binding failed", "connector_id", cfg.ConnectorID,
			"known", connector.Identifiers(), "error", err)
		os.Exit(1)
	}
	slog.Info("origin connector bound", "connector_id", cfg.ConnectorID)

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	playerService := services.NewPlayerService(database.DB)
	rankService := services.NewRankService(database.DB)
	groupService := services.NewGroupService(database.DB)
	kioskService := services.NewKioskService(database.DB, conn)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(cfg.ConnectorID)
	playerHandler := handlers.NewPlayerHandler(playerService)
	rankHandler := handlers.NewRankHandler(rankService)
	groupHandler := handlers.NewGroupHandler(groupService)
	kioskHandler := handlers.NewKioskHandler(kioskService)
	settingsHandler := handlers.NewSettingsHandler(database.DB)

	// Unattended property sync
	if cfg.SyncEnabled {
		if _, err := services.StartPropertySyncScheduler(database.DB, conn, cfg); err != nil {
			slog.Error("sync scheduler failed to start", "error", err)
		}
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.AccountMiddleware(database.DB))

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler,
		playerHandler, rankHandler, groupHandler, kioskHandler, settingsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "connector_id", cfg.ConnectorID)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
