package main

import (
	"context"
	"log"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/config"
	"trip-log-service/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool creates the trip and cache tables in the configured database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL, db.Pool{MaxConns: config.GetInt("DB_MAX_CONNS", 0)})
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
