package main

import (
	"postflow/internal/app"
	"postflow/pkg/config"
	"postflow/pkg/database"
	"postflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	defer log.Sync()

	client, db, err := database.NewMongoDB(cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}
	log.Info("Connected to MongoDB database %q", cfg.MongoDatabase)

	app.Run(cfg, log, client, db)
}
