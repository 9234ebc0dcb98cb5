package services

import (
	"errors"

	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate looks up a user by exact username and compares the stored
// password byte for byte. Passwords are deliberately kept in plain text to
// match the seeded accounts; see DESIGN.md before deploying this anywhere.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
