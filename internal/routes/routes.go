package routes

import (
	"time"

	"github.com/careloop/selfcare-backend/internal/config"
	"github.com/careloop/selfcare-backend/internal/handlers"
	"github.com/careloop/selfcare-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	routineHandler *handlers.RoutineHandler,
	moodHandler *handlers.MoodHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
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

	// Protected auth routes - apply middleware to individual routes so the
	// JWT middleware doesn't affect the public ones above
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Routines (protected). Static segments registered before :id.
	routines := api.Group("/routines", middleware.JWTProtected(cfg))
	routines.Post("/generate", routineHandler.Generate)
	routines.Get("/", routineHandler.List)
	routines.Get("/templates", routineHandler.Templates)
	routines.Get("/search", routineHandler.Search)
	routines.Get("/recommendations", routineHandler.Recommendations)
	routines.Get("/:id", routineHandler.Get)
	routines.Post("/:id/complete", routineHandler.Complete)

	// Mood journal (protected)
	moods := api.Group("/moods", middleware.JWTProtected(cfg))
	moods.Post("/", moodHandler.Create)
	moods.Get("/", moodHandler.List)
	moods.Get("/analytics", moodHandler.Analytics)
	moods.Get("/:id", moodHandler.Get)
	moods.Put("/:id", moodHandler.Update)
	moods.Delete("/:id", moodHandler.Delete)

	// Routine analytics (protected)
	stats := api.Group("/analytics", middleware.JWTProtected(cfg))
	stats.Get("/", analyticsHandler.Overview)
	stats.Get("/mood-trends", analyticsHandler.MoodTrends)
	stats.Get("/category-distribution", analyticsHandler.CategoryDistribution)
}
