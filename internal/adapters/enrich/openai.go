package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIDescriber drafts short marketing descriptions for catalog entries
// so admins do not have to write them from scratch.
type OpenAIDescriber struct {
	client *openai.Client
}

func NewOpenAIDescriber(apiKey string) (*OpenAIDescriber, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not configured")
	}
	return &OpenAIDescriber{client: openai.NewClient(apiKey)}, nil
}

func (d *OpenAIDescriber) Describe(name, hint string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf("Write a concise product description (2-3 sentences, plain text) for a fitness store item named %q.", name)
	if strings.TrimSpace(hint) != "" {
		prompt += fmt.Sprintf(" Additional context: %s", hint)
	}

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write short, factual product copy. Never invent specifications.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.4,
		MaxTokens:   200,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
