// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Telegram settings
	TelegramToken  string
	TelegramChatID string

	// Summarization settings
	SummaryProvider string // "openai" or "gemini"
	OpenAIAPIKey    string
	OpenAIModel     string
	GeminiAPIKey    string

	// Provider settings
	NewsAPIKey      string // optional; empty disables the NewsAPI provider
	FeedsConfigPath string
	VocabConfigPath string // optional keyword-table override

	// Curation settings
	PerCompanyCap        int
	MaxArticles          int
	MaxBullets           int
	MessageCharLimit     int
	SameDomainThreshold  float64
	CrossDomainThreshold float64

	// Scraper settings
	ScrapeConcurrency int // parallel fetches for description enrichment
	ScrapeMaxArticles int

	// History settings
	HistoryFilePath string
	HistoryTTLDays  int
	DatabaseURL     string // optional; switches history to Postgres

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		SummaryProvider:      "openai",
		OpenAIModel:          "gpt-4o-mini",
		FeedsConfigPath:      "configs/feeds.yaml",
		PerCompanyCap:        7,
		MaxArticles:          120,
		MaxBullets:           15,
		MessageCharLimit:     4096,
		SameDomainThreshold:  0.80,
		CrossDomainThreshold: 0.87,
		ScrapeConcurrency:    8,
		ScrapeMaxArticles:    20,
		HistoryFilePath:      "sent_articles.json",
		HistoryTTLDays:       28,
		RequestTimeout:       30 * time.Second,
		RetryAttempts:        3,
		RetryDelay:           5 * time.Second,
	}

	// Load from environment
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.SummaryProvider = getEnvOrDefault("SUMMARY_PROVIDER", cfg.SummaryProvider)
	cfg.OpenAIModel = getEnvOrDefault("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.VocabConfigPath = os.Getenv("VOCAB_CONFIG_PATH")
	cfg.HistoryFilePath = getEnvOrDefault("HISTORY_FILE_PATH", cfg.HistoryFilePath)

	cfg.PerCompanyCap = getEnvIntOrDefault("PER_COMPANY_CAP", cfg.PerCompanyCap)
	cfg.MaxArticles = getEnvIntOrDefault("MAX_ARTICLES", cfg.MaxArticles)
	cfg.MaxBullets = getEnvIntOrDefault("MAX_BULLETS", cfg.MaxBullets)
	cfg.MessageCharLimit = getEnvIntOrDefault("MESSAGE_CHAR_LIMIT", cfg.MessageCharLimit)
	cfg.ScrapeConcurrency = getEnvIntOrDefault("SCRAPE_CONCURRENCY", cfg.ScrapeConcurrency)
	cfg.ScrapeMaxArticles = getEnvIntOrDefault("SCRAPE_MAX_ARTICLES", cfg.ScrapeMaxArticles)
	cfg.HistoryTTLDays = getEnvIntOrDefault("HISTORY_TTL_DAYS", cfg.HistoryTTLDays)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)

	if v := os.Getenv("SAME_DOMAIN_THRESHOLD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 && val <= 1 {
			cfg.SameDomainThreshold = val
		}
	}
	if v := os.Getenv("CROSS_DOMAIN_THRESHOLD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 && val <= 1 {
			cfg.CrossDomainThreshold = val
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required")
	}
	switch c.SummaryProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when SUMMARY_PROVIDER=openai")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when SUMMARY_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("SUMMARY_PROVIDER must be 'openai' or 'gemini'")
	}
	if c.PerCompanyCap <= 0 {
		return fmt.Errorf("PER_COMPANY_CAP must be positive")
	}
	if c.MessageCharLimit <= 0 {
		return fmt.Errorf("MESSAGE_CHAR_LIMIT must be positive")
	}
	if c.SameDomainThreshold > c.CrossDomainThreshold {
		return fmt.Errorf("SAME_DOMAIN_THRESHOLD must not exceed CROSS_DOMAIN_THRESHOLD")
	}
	return nil
}
