package summarize

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ridebrief/internal/brief"
)

// GeminiClient is the alternative renderer for deployments without an
// OpenAI key.
type GeminiClient struct {
	client     *genai.Client
	maxBullets int
}

func NewGeminiClient(ctx context.Context, apiKey string, maxBullets int) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, maxBullets: maxBullets}, nil
}

func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *GeminiClient) Summarize(ctx context.Context, articles []brief.Article, coverageStart, coverageEnd string) (string, error) {
	prompt, err := buildPrompt(articles, coverageStart, coverageEnd, c.maxBullets)
	if err != nil {
		return "", err
	}

	model := c.client.GenerativeModel("gemini-1.5-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(systemPrompt+"\n\n"+prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
