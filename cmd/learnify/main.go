package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/learnify-dev/learnify/db"
	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/router"
	"github.com/learnify-dev/learnify/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatalf("FATAL: DATABASE_URL is not defined.")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	database, err := db.Connect(dsn)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(database))

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "5000"
		log.Println("PORT not set, defaulting to 5000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
