package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nickh641/AIPromptMaster/config"
	"github.com/nickh641/AIPromptMaster/internal/llm"
	"github.com/nickh641/AIPromptMaster/internal/models"
	"github.com/nickh641/AIPromptMaster/pkg/logger"

	"go.uber.org/zap"
)

// Per-prompt locks serialize the snapshot-append-reconstruct-append sequence
// so concurrent sends cannot interleave a conversation's history.
var (
	promptLocksMu sync.Mutex
	promptLocks   = map[uint]*sync.Mutex{}
)

func lockForPrompt(id uint) *sync.Mutex {
	promptLocksMu.Lock()
	defer promptLocksMu.Unlock()
	mu, ok := promptLocks[id]
	if !ok {
		mu = &sync.Mutex{}
		promptLocks[id] = mu
	}
	return mu
}

// SendMessage appends a user message to a prompt's conversation, dispatches
// the reconstructed history to the configured provider and appends the reply.
// Provider failures never surface as errors: they are stored as the assistant
// message text, so the caller still receives both persisted messages. The only
// error returned for a well-formed request is an unknown prompt id.
func SendMessage(promptID uint, content string) (*models.Message, *models.Message, error) {
	prompt, err := GetPromptByID(promptID)
	if err != nil {
		return nil, nil, err
	}

	mu := lockForPrompt(promptID)
	mu.Lock()
	defer mu.Unlock()

	// Snapshot before appending so the pending message is not walked twice.
	history, err := ListMessages(promptID)
	if err != nil {
		return nil, nil, err
	}

	userMessage, err := AppendMessage(promptID, content, true, isoNow())
	if err != nil {
		return nil, nil, err
	}

	aiText := dispatch(prompt, BuildTurns(prompt.Content, history, content))

	aiMessage, err := AppendMessage(promptID, aiText, false, isoNow())
	if err != nil {
		return nil, nil, err
	}

	return userMessage, aiMessage, nil
}

// InitializeConversation seeds a conversation with an opening assistant turn
// produced from the system instruction alone, before any user input.
func InitializeConversation(promptID uint) (*models.Message, error) {
	prompt, err := GetPromptByID(promptID)
	if err != nil {
		return nil, err
	}

	mu := lockForPrompt(promptID)
	mu.Lock()
	defer mu.Unlock()

	aiText := dispatch(prompt, InitialTurns(prompt.Content))

	return AppendMessage(promptID, aiText, false, isoNow())
}

// dispatch resolves the provider and credential for a prompt and runs the
// completion call. Every failure path returns user-visible text.
func dispatch(prompt *models.Prompt, turns []llm.Turn) string {
	provider, ok := llm.For(prompt.Provider)
	if !ok {
		return fmt.Sprintf("Unknown provider: %s", prompt.Provider)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Sprintf("Error: %s", err.Error())
	}

	apiKey := cfg.APIKeyForProvider(prompt.Provider)
	if apiKey == "" {
		return fmt.Sprintf("Error: API key not found for provider: %s", prompt.Provider)
	}

	text, err := provider.Complete(context.Background(), apiKey, llm.Request{
		Model:       prompt.Model,
		Temperature: prompt.Temperature,
		Turns:       turns,
	})
	if err != nil {
		logger.Log.Error("provider call failed",
			zap.Uint("prompt_id", prompt.ID),
			zap.String("provider", prompt.Provider),
			zap.Error(err),
		)
		return renderProviderError(prompt.Provider, err)
	}

	return text
}

func renderProviderError(provider string, err error) string {
	var perr *llm.ProviderError
	if errors.As(err, &perr) {
		switch perr.Code {
		case llm.ErrCodeInvalidAPIKey:
			return "Error: Invalid API key. Please ask the administrator to update the OpenAI API key."
		case llm.ErrCodeRateLimitExceeded:
			return "Error: Rate limit exceeded. Please try again in a few moments."
		}
		return fmt.Sprintf("Error communicating with %s: %s", providerDisplayName(provider), perr.Message)
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

func providerDisplayName(name string) string {
	switch name {
	case models.ProviderOpenAI:
		return "OpenAI"
	case models.ProviderGoogle:
		return "Google AI"
	case models.ProviderAnthropic:
		return "Anthropic AI"
	}
	return name
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
