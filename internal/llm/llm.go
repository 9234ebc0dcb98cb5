// Package llm abstracts chat-completion providers behind a single interface so
// the dispatch pipeline contains no per-provider branching.
package llm

import (
	"context"
	"fmt"
)

// Turn roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged unit in a completion request's ordered input.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries everything a provider needs for one completion call. The
// system instruction is the first turn.
type Request struct {
	Model       string
	Temperature float64
	Turns       []Turn
}

// Provider error codes shared across implementations.
const (
	ErrCodeInvalidAPIKey     = "invalid_api_key"
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
)

// ProviderError is a failure reported by a completion service. Code is the
// provider's own error code when one was given.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Provider is a chat-completion backend. Complete blocks until the provider
// responds; the credential is resolved per call, not per client.
type Provider interface {
	Complete(ctx context.Context, apiKey string, req Request) (string, error)
}

var providers = map[string]Provider{}

// Register makes a provider available under the given name. Later
// registrations replace earlier ones.
func Register(name string, p Provider) {
	providers[name] = p
}

// For returns the provider registered under name.
func For(name string) (Provider, bool) {
	p, ok := providers[name]
	return p, ok
}
