package prompt

// CreatePromptRequest accepts apiKey for compatibility with the admin form,
// but the value is discarded: credentials come from server-side configuration
// keyed by provider name and are never persisted onto a prompt.
type CreatePromptRequest struct {
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	APIKey      string  `json:"apiKey"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Content     string  `json:"content"`
	CreatedBy   uint    `json:"createdBy"`
}

// UpdatePromptRequest is a partial update; nil fields are left unchanged.
// apiKey is accepted and discarded here too.
type UpdatePromptRequest struct {
	Name        *string  `json:"name"`
	Provider    *string  `json:"provider"`
	APIKey      *string  `json:"apiKey"`
	Model       *string  `json:"model"`
	Temperature *float64 `json:"temperature"`
	Content     *string  `json:"content"`
	CreatedBy   *uint    `json:"createdBy"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
