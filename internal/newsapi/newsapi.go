// Package newsapi fetches candidate articles from the NewsAPI "everything"
// endpoint for the coverage window. Retrieval is a collaborator of the
// curation pipeline: records come back as brief.Raw and everything else
// happens downstream.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ridebrief/internal/brief"
	"ridebrief/internal/logger"
)

const endpoint = "https://newsapi.org/v2/everything"

// query OR-s the tracked companies (incl. local names) with ride-hailing
// action terms so the provider does a first relevance cut for us.
const query = `("Uber" OR "Uber Technologies" OR "DiDi" OR "Didi Chuxing" OR 滴滴 OR ` +
	`"Bolt" OR "Taxify" OR "inDrive" OR "inDriver" OR "Cabify" OR "Yassir" OR ` +
	`"Heetch" OR "Grab" OR "Gojek") AND ` +
	`(ride OR driver OR mobility OR taxi OR regulation OR pricing OR safety OR expansion ` +
	`OR partnership OR investment OR funding OR strike)`

type Client struct {
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// response mirrors the provider's wire schema.
type response struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch returns raw records published inside [fromISO, toISO]. An empty
// API key yields an empty list so the run can continue on feeds alone.
func (c *Client) Fetch(ctx context.Context, fromISO, toISO string) ([]brief.Raw, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", fromISO)
	params.Set("to", toISO)
	params.Set("searchIn", "title,description,content")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "100")
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close newsapi response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read newsapi response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi status %d: %s", resp.StatusCode, firstBytes(body, 200))
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("newsapi error status %q: %s", parsed.Status, parsed.Message)
	}

	raws := make([]brief.Raw, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		raws = append(raws, brief.Raw{
			Title:       a.Title,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			Description: a.Description,
		})
	}

	logger.Info("newsapi fetch complete", "articles", len(raws))
	return raws, nil
}

func firstBytes(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
