// @title Aptitude Portal API
// @version 1.0
// @description Backend server for the department aptitude test portal.

// @host localhost:8080
// @BasePath /api

package main

import (
	"aptitude_portal_backend/internal/app"
	"aptitude_portal_backend/internal/config"
	"aptitude_portal_backend/pkg/configwatcher"
	"aptitude_portal_backend/pkg/logger"
	"flag"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	// .env is optional; environment overrides come through viper.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
