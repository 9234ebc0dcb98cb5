package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nickh641/AIPromptMaster/internal/api/v1/auth"
	"github.com/nickh641/AIPromptMaster/internal/database"
	"github.com/nickh641/AIPromptMaster/internal/models"
	"github.com/nickh641/AIPromptMaster/pkg/logger"

	"github.com/gin-gonic/gin"
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

	err = db.AutoMigrate(&models.User{})
	if err != nil {
		panic("failed to migrate database")
	}

	db.Create(&[]models.User{
		{Username: "admin", Password: "admin123", IsAdmin: true},
		{Username: "user", Password: "user123", IsAdmin: false},
	})

	database.DB = db
}

func postLogin(body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(b))

	auth.Login(c)
	return w
}

func TestLoginAdmin(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test_secret")

	w := postLogin(auth.LoginInput{Username: "admin", Password: "admin123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp auth.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "admin", resp.Username)
	assert.True(t, resp.IsAdmin)
	assert.NotEmpty(t, resp.Token)

	// The password never appears in the response
	assert.NotContains(t, w.Body.String(), "admin123")
}

func TestLoginStandardUser(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test_secret")

	w := postLogin(auth.LoginInput{Username: "user", Password: "user123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp auth.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.False(t, resp.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	w := postLogin(auth.LoginInput{Username: "admin", Password: "wrongpassword"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	w := postLogin(auth.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	w := postLogin(map[string]string{"username": "admin"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
