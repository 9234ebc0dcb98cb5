package main

import (
	"log"
	"os"

	"github.com/nickh641/AIPromptMaster/config"
	"github.com/nickh641/AIPromptMaster/internal/api"
	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"
	"github.com/nickh641/AIPromptMaster/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.User{}, &models.Prompt{}, &models.Message{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seedData()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// seedData creates the two bootstrap accounts and a sample prompt on first
// start. The prompt's api_key column is filled here and nowhere else.
func seedData() {
	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		users := []models.User{
			{Username: "admin", Password: "admin123", IsAdmin: true},
			{Username: "user", Password: "user123", IsAdmin: false},
		}
		if err := database.DB.Create(&users).Error; err != nil {
			log.Fatalf("failed to seed users: %v", err)
		}
	}

	var promptCount int64
	database.DB.Model(&models.Prompt{}).Count(&promptCount)
	if promptCount == 0 {
		seedKey := os.Getenv("OPENAI_API_KEY")
		if seedKey == "" {
			seedKey = "sk-dummy-key"
		}
		sample := models.Prompt{
			Name:        "Customer Support Assistant",
			Provider:    models.ProviderOpenAI,
			APIKey:      seedKey,
			Model:       "gpt-4o",
			Temperature: 0.7,
			Content:     "You are a helpful customer support assistant. Answer customer questions politely and professionally.",
			CreatedBy:   1,
		}
		if err := database.DB.Create(&sample).Error; err != nil {
			log.Fatalf("failed to seed sample prompt: %v", err)
		}
	}
}
