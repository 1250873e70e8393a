package api

import (
	"photo-vault-go/pkg/api/handlers"
	"photo-vault-go/pkg/api/middleware"
	"photo-vault-go/pkg/db"
	"photo-vault-go/pkg/services"
	"photo-vault-go/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func NewRouter(database *db.DB, storageClient *storage.Client, log *zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Initialize services
	photoService := services.NewPhotoService(database, storageClient)

	// Middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Photo routes follow the original wire contract: authenticated under
	// /photos, with the public share view at /shared/:token.
	photos := router.Group("/photos")
	photos.Use(middleware.RequireAuth(database))
	{
		photos.GET("", handlers.ListPhotos(photoService))
		photos.POST("/upload-url", handlers.RequestUpload(photoService))
		photos.DELETE("/recycle-bin/empty", handlers.EmptyRecycleBin(photoService))
		photos.DELETE("/:id", handlers.SoftDeletePhoto(photoService))
		photos.POST("/:id/restore", handlers.RestorePhoto(photoService))
		photos.POST("/:id/share", handlers.SharePhoto(photoService))
	}

	// Public share view, no auth
	router.GET("/shared/:token", handlers.GetSharedPhoto(photoService))

	// Users
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", handlers.CreateUser(database))
			users.GET("/me", middleware.RequireAuth(database), handlers.GetCurrentUser(database))
		}
	}

	return router
}
