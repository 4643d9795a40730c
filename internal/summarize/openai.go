package summarize

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"ridebrief/internal/brief"
)

// OpenAIClient renders the brief with the chat completions API.
type OpenAIClient struct {
	client     *openai.Client
	model      string
	maxBullets int
}

func NewOpenAIClient(apiKey, model string, maxBullets int) *OpenAIClient {
	return &OpenAIClient{
		client:     openai.NewClient(apiKey),
		model:      model,
		maxBullets: maxBullets,
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, articles []brief.Article, coverageStart, coverageEnd string) (string, error) {
	prompt, err := buildPrompt(articles, coverageStart, coverageEnd, c.maxBullets)
	if err != nil {
		return "", err
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   2500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
