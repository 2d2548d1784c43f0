package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/marcela981/Somos-Server/internal/config"
	"github.com/marcela981/Somos-Server/internal/database"
	"github.com/marcela981/Somos-Server/internal/logger"
	"github.com/marcela981/Somos-Server/internal/routes"
)

func main() {
	log := logger.New("somos-server")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.DBUrl == "" {
		log.Fatal().Msg("DB_URL is required")
	}
	db, err := database.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "somos-server",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
