// Package telegram delivers the rendered brief to a chat or channel.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ridebrief/internal/logger"
	"ridebrief/internal/retry"
)

const apiFormat = "https://api.telegram.org/bot%s/sendMessage"

// MessageLimit is Telegram's hard ceiling per message. The brief is
// truncated to fit before it reaches this package; Split exists as a
// safety net for arbitrary callers.
const MessageLimit = 4096

type Client struct {
	token  string
	chatID string
	http   *http.Client
	retry  retry.Config
}

func NewClient(token, chatID string, timeout time.Duration, attempts int, delay time.Duration) *Client {
	return &Client{
		token:  token,
		chatID: chatID,
		http:   &http.Client{Timeout: timeout},
		retry: retry.Config{
			MaxAttempts: attempts,
			Delay:       delay,
			Backoff:     true,
		},
	}
}

// SendMessage sends one HTML message with retry. Texts over the limit are
// split at paragraph boundaries and sent in order.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	for _, part := range Split(text, MessageLimit) {
		part := part
		err := retry.Do(ctx, c.retry, func() error {
			return c.sendOnce(ctx, part)
		})
		if err != nil {
			return fmt.Errorf("send telegram message: %w", err)
		}
	}
	return nil
}

func (c *Client) sendOnce(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"chat_id":                  c.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf(apiFormat, c.token), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close telegram response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: status %d", resp.StatusCode)
	}
	return nil
}

// Split chunks text to at most limit runes per part, preferring to break
// at a blank line so formatting blocks stay together.
func Split(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	i := 0
	for i < len(runes) {
		end := i + limit
		if end >= len(runes) {
			parts = append(parts, string(runes[i:]))
			break
		}
		window := string(runes[i:end])
		if j := strings.LastIndex(window, "\n\n"); j > 0 {
			cut := i + len([]rune(window[:j])) + 2
			parts = append(parts, string(runes[i:cut]))
			i = cut
			continue
		}
		parts = append(parts, window)
		i = end
	}
	return parts
}
