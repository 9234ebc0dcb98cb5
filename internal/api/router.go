package api

import (
	"github.com/nickh641/AIPromptMaster/config"
	"github.com/nickh641/AIPromptMaster/internal/api/v1/auth"
	"github.com/nickh641/AIPromptMaster/internal/api/v1/prompt"
	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"}, // Allow frontend origin
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		// Reads and conversation endpoints need an authenticated identity
		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			prompt.RegisterRoutes(authorized)
		}

		// Prompt management is admin only
		admin := v1.Group("/")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			prompt.RegisterAdminRoutes(admin)
		}
	}

	return router, nil
}
