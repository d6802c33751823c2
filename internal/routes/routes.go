package routes

import (
	"time"

	"github.com/discvault/api/internal/config"
	"github.com/discvault/api/internal/handlers"
	"github.com/discvault/api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	discHandler *handlers.DiscHandler,
	lostDiscHandler *handlers.LostDiscHandler,
	claimHandler *handlers.ClaimHandler,
	profileHandler *handlers.ProfileHandler,
	promptHandler *handlers.PromptHandler,
	extractHandler *handlers.ExtractHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes - apply middleware per route so the public
	// /auth endpoints stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Collection (protected)
	discs := api.Group("/discs", middleware.JWTProtected(cfg))
	discs.Post("/", discHandler.Create)
	discs.Get("/", discHandler.List)
	discs.Post("/import", discHandler.Import)
	discs.Get("/:id", discHandler.Get)
	discs.Put("/:id", discHandler.Update)
	discs.Delete("/:id", discHandler.Delete)

	// Marketplace feed is public
	api.Get("/marketplace", discHandler.ListForSale)

	// Lost disc reports: browsing is public, writes require auth
	api.Get("/lost-discs", lostDiscHandler.List)
	api.Get("/lost-discs/:id", lostDiscHandler.Get)
	api.Post("/lost-discs", middleware.JWTProtected(cfg), lostDiscHandler.Create)
	api.Put("/lost-discs/:id", middleware.JWTProtected(cfg), lostDiscHandler.Update)
	api.Delete("/lost-discs/:id", middleware.JWTProtected(cfg), lostDiscHandler.Delete)

	// Claim lifecycle (protected)
	api.Post("/lost-discs/:id/claims", middleware.JWTProtected(cfg), claimHandler.Submit)
	claimGroup := api.Group("/claims", middleware.JWTProtected(cfg))
	claimGroup.Get("/mine", claimHandler.ListMine)
	claimGroup.Get("/on-my-discs", claimHandler.ListOnMyDiscs)
	claimGroup.Put("/:id/review", claimHandler.Review)
	claimGroup.Put("/:id/complete", claimHandler.Complete)
	claimGroup.Get("/:id/contact", claimHandler.Contact)
	claimGroup.Delete("/:id", claimHandler.Delete)

	// Profile and player directory
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.Get)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.Update)
	api.Get("/players", middleware.JWTProtected(cfg), profileHandler.Directory)

	// AI extraction (protected; the model call is billed)
	api.Post("/extract-disc", middleware.JWTProtected(cfg), extractHandler.ExtractDisc)

	// Admin prompt management
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/prompts", promptHandler.List)
	admin.Put("/prompts/:id", promptHandler.Update)
}
