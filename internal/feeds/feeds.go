// Package feeds pulls candidate articles from configured RSS/Atom sources.
package feeds

import (
	"fmt"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"ridebrief/internal/brief"
	"ridebrief/internal/logger"
)

// Config is the YAML feeds list structure:
//
// feeds:
//   - https://...
type Config struct {
	Feeds []string `yaml:"feeds"`
}

// Load reads the RSS feeds list from a YAML file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}
	return cfg.Feeds, nil
}

// FetchAll downloads and parses all feeds, mapping items into raw records.
// A broken feed is logged and skipped, never fatal.
func FetchAll(urls []string) []brief.Raw {
	parser := gofeed.NewParser()
	var raws []brief.Raw
	successCount := 0

	for _, u := range urls {
		log := logger.With("url", u)
		feed, err := parser.ParseURL(u)
		if err != nil {
			log.Warn("failed to parse feed", "error", err)
			continue
		}
		for _, item := range feed.Items {
			raws = append(raws, itemToRaw(feed, item))
		}
		successCount++
		log.Debug("feed loaded", "items", len(feed.Items))
	}

	logger.Info("feeds fetch complete", "ok", successCount, "total", len(urls), "articles", len(raws))
	return raws
}

// itemToRaw adapts gofeed's schema to the provider-neutral record shape.
// The published timestamp is re-serialized to RFC 3339 when the parser
// understood it, otherwise passed through as-is.
func itemToRaw(feed *gofeed.Feed, item *gofeed.Item) brief.Raw {
	published := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	return brief.Raw{
		Title:       item.Title,
		Source:      feed.Title,
		PublishedAt: published,
		URL:         item.Link,
		Description: item.Description,
	}
}
