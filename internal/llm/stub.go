package llm

import (
	"context"
	"fmt"
)

func init() {
	Register("google", &ComingSoonProvider{DisplayName: "Google AI"})
	Register("anthropic", &ComingSoonProvider{DisplayName: "Anthropic AI"})
}

// ComingSoonProvider is the placeholder for providers that are recognized but
// not yet integrated. It performs no network I/O.
type ComingSoonProvider struct {
	DisplayName string
}

func (p *ComingSoonProvider) Complete(ctx context.Context, apiKey string, req Request) (string, error) {
	return fmt.Sprintf("Support for %s is coming soon. Please use OpenAI provider for now.", p.DisplayName), nil
}
