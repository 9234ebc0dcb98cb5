package llm

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/nickh641/AIPromptMaster/internal/utils"

	openai "github.com/sashabaranov/go-openai"
)

func init() {
	Register("openai", &OpenAIProvider{})
}

// OpenAIProvider completes turns against the OpenAI chat-completion API.
type OpenAIProvider struct{}

func (p *OpenAIProvider) Complete(ctx context.Context, apiKey string, req Request) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	// No client-side timeout: a completion call runs to the network stack's own
	// limits, matching the rest of the dispatch pipeline.
	cfg.HTTPClient = utils.NewHTTPClient(0)
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, completionRequest(req))
	if err != nil {
		return "", toProviderError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "Sorry, I couldn't generate a response.", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func completionRequest(req Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Turns))
	for _, t := range req.Turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    t.Role,
			Content: t.Content,
		})
	}

	temperature := float32(req.Temperature)
	if temperature == 0 {
		// go-openai marshals Temperature with omitempty, so an exact 0 would be
		// dropped from the payload and the provider default would apply. The
		// smallest non-zero float32 keeps an effective 0 on the wire.
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: temperature,
	}
}

func toProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := ""
		if apiErr.Code != nil {
			code = fmt.Sprintf("%v", apiErr.Code)
		}
		return &ProviderError{Provider: "openai", Code: code, Message: apiErr.Message}
	}
	return &ProviderError{Provider: "openai", Message: err.Error()}
}
