package prompt

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nickh641/AIPromptMaster/internal/services"
	"github.com/nickh641/AIPromptMaster/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// promptID parses the :id path parameter. On a non-numeric id it writes the
// 400 response and reports false.
func promptID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid prompt ID"))
		return 0, false
	}
	return uint(id), true
}

// ListPrompts godoc
// @Summary List prompts
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Prompt
// @Router /prompts [get]
func ListPrompts(c *gin.Context) {
	prompts, err := services.ListPrompts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// GetPrompt godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 200 {object} models.Prompt
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /prompts/{id} [get]
func GetPrompt(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	p, err := services.GetPromptByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} models.Prompt
// @Failure 400 {object} utils.ErrorResponse
// @Router /prompts [post]
func CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := services.CreatePrompt(services.CreatePromptInput{
		Name:        req.Name,
		Provider:    req.Provider,
		Model:       req.Model,
		Temperature: req.Temperature,
		Content:     req.Content,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(verr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Param request body UpdatePromptRequest true "Update Prompt Request"
// @Success 200 {object} models.Prompt
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /prompts/{id} [put]
func UpdatePrompt(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	var req UpdatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := services.UpdatePrompt(id, services.UpdatePromptInput{
		Name:        req.Name,
		Provider:    req.Provider,
		Model:       req.Model,
		Temperature: req.Temperature,
		Content:     req.Content,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
			return
		}
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(verr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /prompts/{id} [delete]
func DeletePrompt(c *gin.Context) {
	id, ok := promptID(c)
	if !ok {
		return
	}

	deleted, err := services.DeletePrompt(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
