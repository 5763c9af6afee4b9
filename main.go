// main.go
package main

import (
	"log"

	"pokerroom-booking/cmd"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/internal/metrics"
	"pokerroom-booking/internal/wire"
	"pokerroom-booking/pkg/cache"
	"pokerroom-booking/pkg/database"
	"pokerroom-booking/pkg/mailer"
	"pokerroom-booking/pkg/utils"

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

	// Optional redis (response cache). App runs fine without it.
	redisClient := cache.NewRedisClient(config.Redis)
	if redisClient == nil {
		logger.Warn("Redis unavailable, response caching disabled")
	} else {
		defer redisClient.Close()
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	}

	// Prometheus counters
	metrics.Register()

	// Outbound email
	mail := mailer.NewMailer(config.Email, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mail, redisClient, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
