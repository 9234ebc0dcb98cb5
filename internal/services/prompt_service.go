package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"
)

const (
	promptCacheKeyPrefix = "prompt:id:"
	promptCacheDuration  = 24 * time.Hour
)

// ValidationError reports a single invalid prompt field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CreatePromptInput carries every field required to create a prompt.
// CreatedBy is recorded as supplied and is not checked against the user table.
type CreatePromptInput struct {
	Name        string
	Provider    string
	Model       string
	Temperature float64
	Content     string
	CreatedBy   uint
}

// UpdatePromptInput carries a partial update; nil fields are left unchanged.
type UpdatePromptInput struct {
	Name        *string
	Provider    *string
	Model       *string
	Temperature *float64
	Content     *string
	CreatedBy   *uint
}

// CreatePrompt validates the input and stores a new prompt.
func CreatePrompt(in CreatePromptInput) (*models.Prompt, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "Name is required"}
	}
	if in.Provider == "" {
		return nil, &ValidationError{Field: "provider", Message: "Provider is required"}
	}
	if in.Model == "" {
		return nil, &ValidationError{Field: "model", Message: "Model is required"}
	}
	if in.Content == "" {
		return nil, &ValidationError{Field: "content", Message: "Content is required"}
	}
	if err := validateTemperature(in.Temperature); err != nil {
		return nil, err
	}

	prompt := &models.Prompt{
		Name:        in.Name,
		Provider:    in.Provider,
		Model:       in.Model,
		Temperature: in.Temperature,
		Content:     in.Content,
		CreatedBy:   in.CreatedBy,
	}

	if err := database.DB.Create(prompt).Error; err != nil {
		return nil, err
	}

	return prompt, nil
}

// UpdatePrompt merges the supplied fields onto an existing prompt. Supplied
// fields are validated the same way CreatePrompt validates them.
func UpdatePrompt(id uint, in UpdatePromptInput) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := database.DB.First(&prompt, id).Error; err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, &ValidationError{Field: "name", Message: "Name is required"}
		}
		prompt.Name = *in.Name
	}
	if in.Provider != nil {
		if *in.Provider == "" {
			return nil, &ValidationError{Field: "provider", Message: "Provider is required"}
		}
		prompt.Provider = *in.Provider
	}
	if in.Model != nil {
		if *in.Model == "" {
			return nil, &ValidationError{Field: "model", Message: "Model is required"}
		}
		prompt.Model = *in.Model
	}
	if in.Temperature != nil {
		if err := validateTemperature(*in.Temperature); err != nil {
			return nil, err
		}
		prompt.Temperature = *in.Temperature
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, &ValidationError{Field: "content", Message: "Content is required"}
		}
		prompt.Content = *in.Content
	}
	if in.CreatedBy != nil {
		prompt.CreatedBy = *in.CreatedBy
	}

	if err := database.DB.Save(&prompt).Error; err != nil {
		return nil, err
	}

	invalidatePromptCache(id)

	return &prompt, nil
}

// DeletePrompt removes a prompt. It reports false, without an error, when no
// record existed, so repeated deletes are harmless.
func DeletePrompt(id uint) (bool, error) {
	result := database.DB.Delete(&models.Prompt{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	invalidatePromptCache(id)

	return true, nil
}

// GetPromptByID retrieves a prompt, using cache
func GetPromptByID(id uint) (*models.Prompt, error) {
	cacheKey := fmt.Sprintf("%s%d", promptCacheKeyPrefix, id)

	// Try cache
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result(); err == nil {
			var prompt models.Prompt
			if err := json.Unmarshal([]byte(val), &prompt); err == nil {
				return &prompt, nil
			}
		}
	}

	var prompt models.Prompt
	if err := database.DB.First(&prompt, id).Error; err != nil {
		return nil, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(prompt); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, promptCacheDuration)
		}
	}

	return &prompt, nil
}

// ListPrompts returns every prompt in the backing store's natural order.
func ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := database.DB.Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func validateTemperature(t float64) error {
	if t < 0 || t > 2 {
		return &ValidationError{Field: "temperature", Message: "Temperature must be between 0 and 2"}
	}
	return nil
}

func invalidatePromptCache(id uint) {
	if database.RedisClient == nil {
		return
	}
	cacheKey := fmt.Sprintf("%s%d", promptCacheKeyPrefix, id)
	database.RedisClient.Del(database.Ctx, cacheKey)
}
