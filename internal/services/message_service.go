package services

import (
	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"
)

// ListMessages returns a prompt's messages in ascending id order, which is
// insertion order. An unknown prompt id yields an empty slice, not an error.
func ListMessages(promptID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := database.DB.Where("prompt_id = ?", promptID).Order("id asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// AppendMessage stores one message. The prompt foreign key is not re-checked
// here; callers verify prompt existence before appending.
func AppendMessage(promptID uint, content string, isUser bool, timestamp string) (*models.Message, error) {
	message := &models.Message{
		PromptID:  promptID,
		Content:   content,
		IsUser:    isUser,
		Timestamp: timestamp,
	}

	if err := database.DB.Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}

// ClearMessages removes every message for a prompt. Clearing a prompt with no
// messages is a no-op.
func ClearMessages(promptID uint) error {
	return database.DB.Where("prompt_id = ?", promptID).Delete(&models.Message{}).Error
}
