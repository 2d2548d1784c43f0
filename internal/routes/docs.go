package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/config"
)

type docsRoute struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Auth        bool   `json:"auth"`
}

// docsCatalog is the machine-readable route index served at /api/docs. It is
// maintained by hand alongside RegisterRoutes.
var docsCatalog = []docsRoute{
	{Method: fiber.MethodGet, Path: "/health", Description: "Service liveness check", Auth: false},
	{Method: fiber.MethodPost, Path: "/api/auth/register", Description: "Register a new account", Auth: false},
	{Method: fiber.MethodPost, Path: "/api/auth/login", Description: "Exchange credentials for a token", Auth: false},
	{Method: fiber.MethodGet, Path: "/api/auth/me", Description: "Current user and profile", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/users/me", Description: "Current user and profile", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/users/onboarding", Description: "Complete profile onboarding", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/users/profile", Description: "Fetch own profile", Auth: true},
	{Method: fiber.MethodPut, Path: "/api/v1/users/profile", Description: "Partially update own profile", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/users/profile/avatar", Description: "Upload profile avatar", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/logs/weight", Description: "Record a weight measurement", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/logs/weight", Description: "List weight logs", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/logs/workouts", Description: "Record a workout session", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/logs/workouts", Description: "List workout logs", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/logs/nutrition", Description: "Record a nutrition entry", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/logs/nutrition", Description: "List nutrition logs", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/analytics/progress", Description: "Progress summary over a time range", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/analytics/calorie-goal", Description: "Daily calorie goal and macro targets", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/ai/recommendations", Description: "Generic personalized recommendation", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/ai/workout-plan", Description: "Personalized workout plan", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/ai/nutrition-advice", Description: "Personalized nutrition advice", Auth: true},
	{Method: fiber.MethodPost, Path: "/api/v1/ai/analyze-progress", Description: "Narrative progress analysis", Auth: true},
	{Method: fiber.MethodGet, Path: "/api/v1/ai/history", Description: "Past recommendation records", Auth: true},
}

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	loadedAt := time.Now().UTC().Format(time.RFC3339)

	app.Get("/api/docs", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"service":   "somos-server",
			"loaded_at": loadedAt,
			"routes":    docsCatalog,
		})
	})

	return nil
}

func applyDocsBaseHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
