package services

import (
	"fmt"
	"testing"

	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"
	"github.com/nickh641/AIPromptMaster/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	err = db.AutoMigrate(&models.User{}, &models.Prompt{}, &models.Message{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func validCreateInput() CreatePromptInput {
	return CreatePromptInput{
		Name:        "Support Assistant",
		Provider:    "openai",
		Model:       "gpt-4o",
		Temperature: 0.7,
		Content:     "You are a helpful assistant.",
		CreatedBy:   1,
	}
}

func TestCreatePrompt(t *testing.T) {
	setupTestDB()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Support Assistant", p.Name)
	assert.Equal(t, "openai", p.Provider)
	assert.Equal(t, 0.7, p.Temperature)
	assert.Equal(t, uint(1), p.CreatedBy)
}

func TestCreatePromptValidation(t *testing.T) {
	setupTestDB()

	tests := []struct {
		name   string
		mutate func(*CreatePromptInput)
		field  string
	}{
		{"missing name", func(in *CreatePromptInput) { in.Name = "" }, "name"},
		{"missing provider", func(in *CreatePromptInput) { in.Provider = "" }, "provider"},
		{"missing model", func(in *CreatePromptInput) { in.Model = "" }, "model"},
		{"missing content", func(in *CreatePromptInput) { in.Content = "" }, "content"},
		{"temperature too high", func(in *CreatePromptInput) { in.Temperature = 2.5 }, "temperature"},
		{"temperature negative", func(in *CreatePromptInput) { in.Temperature = -0.1 }, "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			_, err := CreatePrompt(in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreatePromptDoesNotCheckCreatedBy(t *testing.T) {
	setupTestDB()

	in := validCreateInput()
	in.CreatedBy = 9999 // no such user

	p, err := CreatePrompt(in)
	assert.NoError(t, err)
	assert.Equal(t, uint(9999), p.CreatedBy)
}

func TestUpdatePromptPartial(t *testing.T) {
	setupTestDB()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)

	temp := 1.5
	updated, err := UpdatePrompt(p.ID, UpdatePromptInput{Temperature: &temp})
	assert.NoError(t, err)
	assert.Equal(t, 1.5, updated.Temperature)
	// Untouched fields are preserved
	assert.Equal(t, "Support Assistant", updated.Name)
	assert.Equal(t, "gpt-4o", updated.Model)
}

func TestUpdatePromptValidatesSuppliedFields(t *testing.T) {
	setupTestDB()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)

	empty := ""
	_, err = UpdatePrompt(p.ID, UpdatePromptInput{Content: &empty})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)

	temp := 3.0
	_, err = UpdatePrompt(p.ID, UpdatePromptInput{Temperature: &temp})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "temperature", verr.Field)
}

func TestUpdatePromptNotFound(t *testing.T) {
	setupTestDB()

	name := "x"
	_, err := UpdatePrompt(42, UpdatePromptInput{Name: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePrompt(t *testing.T) {
	setupTestDB()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)

	deleted, err := DeletePrompt(p.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Repeated delete returns false without erroring
	deleted, err = DeletePrompt(p.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeletePromptUnknownID(t *testing.T) {
	setupTestDB()

	deleted, err := DeletePrompt(12345)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetPromptByIDUsesCache(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)

	// First read populates the cache
	got, err := GetPromptByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, mr.Exists(fmt.Sprintf("prompt:id:%d", p.ID)))

	// Second read is served from the cache even after the row changes underneath
	database.DB.Model(&models.Prompt{}).Where("id = ?", p.ID).Update("name", "changed")
	got, err = GetPromptByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Support Assistant", got.Name)
}

func TestUpdatePromptInvalidatesCache(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	p, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)

	_, err = GetPromptByID(p.ID)
	assert.NoError(t, err)

	name := "renamed"
	_, err = UpdatePrompt(p.ID, UpdatePromptInput{Name: &name})
	assert.NoError(t, err)

	got, err := GetPromptByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestGetPromptByIDNotFound(t *testing.T) {
	setupTestDB()

	_, err := GetPromptByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPrompts(t *testing.T) {
	setupTestDB()

	_, err := CreatePrompt(validCreateInput())
	assert.NoError(t, err)
	in := validCreateInput()
	in.Name = "Second"
	_, err = CreatePrompt(in)
	assert.NoError(t, err)

	prompts, err := ListPrompts()
	assert.NoError(t, err)
	assert.Len(t, prompts, 2)
}
