package main

import (
	"context"
	"log"

	"junk-hauling/cmd"
	"junk-hauling/internal/data/repository"
	"junk-hauling/internal/wire"
	"junk-hauling/pkg/database"
	"junk-hauling/pkg/filestore/local"
	"junk-hauling/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Create tables if absent
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to run schema migration", zap.Error(err))
	}

	// Upload directory for quote photos
	photos, err := local.NewLocalFileStore(config.Upload.Dir)
	if err != nil {
		logger.Fatal("Failed to init file store", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, photos, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
