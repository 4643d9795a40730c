// Package scrape fills in missing article descriptions by fetching the
// page and reading its meta tags. Best effort: any failure keeps the
// original article untouched.
package scrape

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ridebrief/internal/brief"
	"ridebrief/internal/logger"
)

const maxHTMLBodyBytes = 1 << 20 // 1 MiB

type Enricher struct {
	client      *http.Client
	concurrency int
	maxArticles int
}

func NewEnricher(timeout time.Duration, concurrency, maxArticles int) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		client:      &http.Client{Timeout: timeout},
		concurrency: concurrency,
		maxArticles: maxArticles,
	}
}

// Enrich scrapes descriptions for the first maxArticles articles that lack
// one. Returns a new slice in the original order.
func (e *Enricher) Enrich(articles []brief.Article) []brief.Article {
	out := make([]brief.Article, len(articles))
	copy(out, articles)

	var targets []int
	for i, a := range out {
		if a.Description == "" {
			targets = append(targets, i)
			if e.maxArticles > 0 && len(targets) >= e.maxArticles {
				break
			}
		}
	}
	if len(targets) == 0 {
		return out
	}

	jobCh := make(chan int)
	var wg sync.WaitGroup

	workers := e.concurrency
	if workers > len(targets) {
		workers = len(targets)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				desc, err := e.fetchDescription(out[idx].URL)
				if err != nil {
					logger.Debug("description scrape failed", "url", out[idx].URL, "error", err)
					continue
				}
				if desc != "" {
					out[idx].Description = desc
				}
			}
		}()
	}

	for _, idx := range targets {
		jobCh <- idx
	}
	close(jobCh)
	wg.Wait()

	logger.Info("description enrichment done", "candidates", len(targets))
	return out
}

// fetchDescription pulls og:description or the meta description tag.
func (e *Enricher) fetchDescription(url string) (string, error) {
	resp, err := e.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxHTMLBodyBytes))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	extract := func(sel string) string {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}

	if desc := extract(`meta[property="og:description"]`); desc != "" {
		return desc, nil
	}
	return extract(`meta[name="description"]`), nil
}
