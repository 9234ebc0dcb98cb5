package models

// Message is one stored conversation turn for a prompt. Ordering is by
// ascending ID; Timestamp is informational only and is not guaranteed to be
// strictly increasing under concurrent appends. Messages are never updated and
// are deleted only in bulk per prompt.
type Message struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	PromptID  uint   `gorm:"index;not null" json:"promptId"`
	Content   string `gorm:"type:text;not null" json:"content"`
	IsUser    bool   `gorm:"not null" json:"isUser"`
	Timestamp string `gorm:"not null" json:"timestamp"`
}
