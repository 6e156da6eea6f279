package main

import (
	"log/slog"
	"os"

	"github.com/bhulekh-dev/bhulekh/db"
	"github.com/bhulekh-dev/bhulekh/internal/auth"
	"github.com/bhulekh-dev/bhulekh/internal/logging"
	"github.com/bhulekh-dev/bhulekh/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	logging.Setup()

	if err := auth.InitJWTSecret(); err != nil {
		slog.Error("failed to initialize JWT secret", "error", err)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		slog.Error("DATABASE_URL environment variable is not set")
		os.Exit(1)
	}

	if err := db.ConnectDatabase(os.Getenv("DB_TYPE"), dsn); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.MigrateDatabase(); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	r := router.NewRouter()

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		slog.Info("PORT not set, defaulting to 3000")
	}

	slog.Info("starting server", "port", port)

	if err := r.Run(":" + port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
