package models

import "time"

// Known provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
)

// Prompt bundles a system instruction with the provider, model and sampling
// temperature used when continuing its conversation.
//
// APIKey is a legacy column: it is filled for the seed row only and is never
// written from a request payload. Completion calls resolve the credential from
// server-side configuration by provider name instead.
type Prompt struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Provider    string    `gorm:"not null" json:"provider"`
	APIKey      string    `gorm:"column:api_key" json:"-"`
	Model       string    `gorm:"not null" json:"model"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedBy   uint      `gorm:"not null" json:"createdBy"`
}
