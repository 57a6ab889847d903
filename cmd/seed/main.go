package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"postflow/internal/entity"
	"postflow/internal/repo/persistent"
	"postflow/pkg/config"
	"postflow/pkg/database"
	"postflow/pkg/logger"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	var count int
	flag.IntVar(&count, "count", 20, "number of posts to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	defer log.Sync()

	client, db, err := database.NewMongoDB(cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error("Error closing MongoDB connection: %v", err)
		}
	}()

	postRepo := persistent.NewPostRepository(db)

	ctx := context.Background()
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to create indexes: %v", err)
		panic(err)
	}

	for i := 0; i < count; i++ {
		content := gofakeit.Sentence(gofakeit.Number(5, 20))
		post := &entity.Post{
			Username:  gofakeit.Username(),
			Content:   content,
			PostType:  entity.DeriveType(content, ""),
			UserIP:    gofakeit.IPv4Address(),
			UserAgent: gofakeit.UserAgent(),
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Error("Failed to seed post %d: %v", i+1, err)
			panic(err)
		}
	}

	log.Info("Seeded %d posts", count)
}
