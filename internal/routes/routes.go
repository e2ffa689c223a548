package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/config"
	"github.com/twocngdagz/lush-sub001/internal/handlers"
	"github.com/twocngdagz/lush-sub001/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	playerHandler *handlers.PlayerHandler,
	rankHandler *handlers.RankHandler,
	groupHandler *handlers.GroupHandler,
	kioskHandler *handlers.KioskHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no account required)
	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Protected admin surface (JWT required)
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/players", playerHandler.List)
	protected.Get("/players/export", playerHandler.Export)
	protected.Post("/players", playerHandler.Create)
	protected.Get("/players/:id", playerHandler.Get)
	protected.Put("/players/:id", playerHandler.Update)
	protected.Delete("/players/:id", playerHandler.Delete)

	protected.Get("/ranks", rankHandler.List)
	protected.Post("/ranks", rankHandler.Create)
	protected.Put("/ranks/:id", rankHandler.Update)
	protected.Delete("/ranks/:id", rankHandler.Delete)

	protected.Get("/groups", groupHandler.List)
	protected.Post("/groups", groupHandler.Create)
	protected.Get("/groups/:id", groupHandler.Get)
	protected.Put("/groups/:id", groupHandler.Update)
	protected.Delete("/groups/:id", groupHandler.Delete)
	protected.Post("/groups/:id/players", groupHandler.AddPlayer)
	protected.Delete("/groups/:id/players/:player_id", groupHandler.RemovePlayer)

	// Connector-backed kiosk operations
	kiosk := protected.Group("/kiosk")
	kiosk.Get("/validate", kioskHandler.ValidateConnection)
	kiosk.Get("/groups", kioskHandler.Groups)
	kiosk.Post("/groups/enroll", kioskHandler.EnrollPlayer)
	kiosk.Get("/methods", kioskHandler.Methods)
	kiosk.Post("/methods/invoke", kioskHandler.InvokeMethod)
	kiosk.Get("/players/:player_id/offers", kioskHandler.PlayerOffers)
	kiosk.Post("/offers/redeem", kioskHandler.RedeemOffer)
	kiosk.Get("/players/:player_id/score", kioskHandler.PlayerScore)

	// Admin settings management (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/settings", settingsHandler.Get)
	admin.Put("/settings", settingsHandler.Put)
}
