package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	postHTTP "postflow/internal/controller/http"
	"postflow/internal/repo/persistent"
	"postflow/internal/usecase"
	"postflow/pkg/config"
	"postflow/pkg/logger"
	"postflow/pkg/middleware"
	"postflow/pkg/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func Run(cfg *config.Config, log *logger.Logger, client *mongo.Client, db *mongo.Database) {
	// Uploads live in a fixed subdirectory of the served static directory.
	saver, err := upload.NewSaver(filepath.Join(cfg.StaticDir, "uploads"))
	if err != nil {
		log.Error("Failed to prepare upload directory: %v", err)
		panic(err)
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Error("Failed to create indexes: %v", err)
		panic(err)
	}
	cancel()

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, saver, log)

	// Initialize HTTP handlers
	postHandler := postHTTP.NewPostHandler(postUseCase, log)

	// Setup router
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic recovered: %v", recovered)
		c.HTML(http.StatusInternalServerError, "server_error.html", nil)
	}))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * 3600,
	}))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)
	r.Static("/uploads", filepath.Join(cfg.StaticDir, "uploads"))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", postHandler.Home)
	r.GET("/posts", postHandler.ListPosts)
	r.GET("/posts/new", postHandler.NewPostForm)
	r.POST("/posts", postHandler.CreatePost)
	r.GET("/posts/:id", postHandler.ShowPost)
	r.GET("/posts/:id/edit", postHandler.EditPostForm)
	r.PATCH("/posts/:id", postHandler.UpdatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)

	// Create HTTP server. HTML forms can only submit GET/POST, so the engine
	// is wrapped with the _method override before routing happens.
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: middleware.MethodOverride(r),
	}

	// Start server in a goroutine
	go func() {
		log.Info("PostFlow starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down PostFlow...")

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close MongoDB connection
	if err := client.Disconnect(ctx); err != nil {
		log.Error("Error closing MongoDB connection: %v", err)
	}

	log.Info("PostFlow exited")
}
