package main

import (
	"log"

	"github.com/joho/godotenv"

	"hrms-backend/config"
	"hrms-backend/internal/database"
)

// Standalone seeder for populating a fresh database without starting the
// API server. The same routine runs on server startup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.SeedAll(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding complete")
}
