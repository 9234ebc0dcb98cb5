package prompt

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the read and conversation endpoints, available to any
// authenticated user.
func RegisterRoutes(router *gin.RouterGroup) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", ListPrompts)
		promptGroup.GET("/:id", GetPrompt)
		promptGroup.GET("/:id/messages", ListMessages)
		promptGroup.DELETE("/:id/messages", ClearMessages)
		promptGroup.POST("/:id/messages", SendMessage)
		promptGroup.POST("/:id/initialize", Initialize)
	}
}

// RegisterAdminRoutes mounts the prompt management endpoints, admin only.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.POST("", CreatePrompt)
		promptGroup.PUT("/:id", UpdatePrompt)
		promptGroup.DELETE("/:id", DeletePrompt)
	}
}
