package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"hrms-backend/config"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/database"
	"hrms-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Idempotent seeding runs before the server accepts traffic
	if err := database.SeedAll(db); err != nil {
		log.Fatalf("failed to seed default data: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.JWTExpireMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("failed to configure token service: %v", err)
	}

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Uploaded receipts are served back by their stored path
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	routes.SetupAuthRoutes(app, db, tokens)
	routes.SetupLeaveRoutes(app, db, tokens)
	routes.SetupExpenseRoutes(app, db, tokens, cfg.UploadDir)
	routes.SetupAttendanceRoutes(app, db, tokens)
	routes.SetupReportRoutes(app, db, tokens)
	routes.SetupAdminRoutes(app, db, tokens)

	log.Printf("server listening on port %s", cfg.ServerPort)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
