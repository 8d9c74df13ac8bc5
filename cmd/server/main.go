package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"secondbrain/internal/agent"
	"secondbrain/internal/clock"
	"secondbrain/internal/config"
	"secondbrain/internal/database"
	"secondbrain/internal/handlers"
	"secondbrain/internal/routes"
	"secondbrain/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	clk := clock.System()
	st := store.NewGormStore(db)
	ag := agent.New(st, clk, logger, cfg.UserName)
	h := handlers.New(st, ag, clk, logger, cfg.UserName)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())

	routes.Setup(app, h)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
