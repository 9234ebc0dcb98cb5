package prompt

import (
	"errors"
	"net/http"

	"github.com/nickh641/AIPromptMaster/internal/models"
	"github.com/nickh641/AIPromptMaster/internal/services"
	"github.com/nickh641/AIPromptMaster/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendMessageResponse returns both persisted turns of one exchange. A provider
// failure still produces a 201: the failure text is the aiMessage content.
type SendMessageResponse struct {
	UserMessage models.Message `json:"userMessage"`
	AIMessage   models.Message `json:"aiMessage"`
}

type InitializeResponse struct {
	Message models.Message `json:"message"`
}

// ListMessages godoc
// @Summary List a prompt's conversation history
// @Tags messages
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 200 {array} models.Message
// @Failure 400 {object} utils.ErrorResponse
// @Router /prompts/{id}/messages [get]
func ListMessages(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	messages, err := services.ListMessages(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ClearMessages godoc
// @Summary Clear a prompt's conversation history
// @Tags messages
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Router /prompts/{id}/messages [delete]
func ClearMessages(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	if err := services.ClearMessages(id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

// SendMessage godoc
// @Summary Send a user message and get the assistant reply
// @Tags messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} SendMessageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /prompts/{id}/messages [post]
func SendMessage(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userMessage, aiMessage, err := services.SendMessage(id, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, SendMessageResponse{
		UserMessage: *userMessage,
		AIMessage:   *aiMessage,
	})
}

// Initialize godoc
// @Summary Seed a conversation with an opening assistant turn
// @Tags messages
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 201 {object} InitializeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /prompts/{id}/initialize [post]
func Initialize(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	message, err := services.InitializeConversation(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, InitializeResponse{Message: *message})
}
