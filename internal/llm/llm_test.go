package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryHasAllKnownProviders(t *testing.T) {
	for _, name := range []string{"openai", "google", "anthropic"} {
		_, ok := For(name)
		assert.True(t, ok, "provider %q not registered", name)
	}

	_, ok := For("cohere")
	assert.False(t, ok)
}

func TestComingSoonProvider(t *testing.T) {
	p := &ComingSoonProvider{DisplayName: "Google AI"}

	text, err := p.Complete(context.Background(), "any-key", Request{Model: "gemini"})
	assert.NoError(t, err)
	assert.Equal(t, "Support for Google AI is coming soon. Please use OpenAI provider for now.", text)
}

func TestProviderErrorMessage(t *testing.T) {
	err := &ProviderError{Provider: "openai", Code: ErrCodeRateLimitExceeded, Message: "too many requests"}
	assert.Equal(t, "openai: too many requests", err.Error())
}
