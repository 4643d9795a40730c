// Package app wires the weekly brief run together: fetch, curate,
// summarize, sanitize, deliver.
package app

import (
	"context"
	"fmt"
	"time"

	"ridebrief/internal/brief"
	"ridebrief/internal/config"
	"ridebrief/internal/feeds"
	"ridebrief/internal/logger"
	"ridebrief/internal/metrics"
	"ridebrief/internal/newsapi"
	"ridebrief/internal/render"
	"ridebrief/internal/scrape"
	"ridebrief/internal/schedule"
	"ridebrief/internal/storage"
	"ridebrief/internal/summarize"
	"ridebrief/internal/telegram"
)

// Run executes one weekly brief cycle.
func Run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	defer func() {
		metrics.Global.RecordRunDuration(time.Since(start))
	}()

	window := schedule.LastFullWeek(schedule.Now())
	logger.Info("coverage window", "start", window.ISOStart(), "end", window.ISOEnd())

	raws := fetchAll(ctx, cfg, window)
	metrics.Global.AddFetched(len(raws))
	if len(raws) == 0 {
		logger.Warn("no articles fetched; skipping this run")
		return nil
	}

	history, err := openHistory(cfg)
	if err != nil {
		// History is cross-run convenience, not a correctness requirement.
		logger.Warn("history unavailable, continuing without it", "error", err)
		history = nil
	}
	if history != nil {
		defer func() {
			if err := history.Close(); err != nil {
				logger.Warn("failed to close history", "error", err)
			}
		}()
		raws = dropAlreadySent(raws, history)
	}

	opts := curateOptions(cfg)
	curated, stats := brief.Curate(raws, opts)
	metrics.Global.AddIrrelevant(stats.Irrelevant)
	metrics.Global.AddDuplicates(stats.Duplicates)
	metrics.Global.AddCapped(stats.CapDropped)
	metrics.Global.SetCurated(len(curated))
	logger.Info("curation complete",
		"fetched", stats.Input,
		"irrelevant", stats.Irrelevant,
		"duplicates", stats.Duplicates,
		"capped", stats.CapDropped,
		"curated", stats.Output)

	if len(curated) == 0 {
		logger.Info("no relevant competitor news this week; nothing to send")
		return nil
	}

	enricher := scrape.NewEnricher(cfg.RequestTimeout, cfg.ScrapeConcurrency, cfg.ScrapeMaxArticles)
	curated = enricher.Enrich(curated)

	text := summarizeOrFallback(ctx, cfg, curated, window)

	text = render.Sanitize(text, opts.Vocabulary, cfg.PerCompanyCap, cfg.MaxBullets)
	text = render.FitMessage(text, cfg.MessageCharLimit)

	tg := telegram.NewClient(cfg.TelegramToken, cfg.TelegramChatID, cfg.RequestTimeout, cfg.RetryAttempts, cfg.RetryDelay)
	if err := tg.SendMessage(ctx, text); err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("deliver brief: %w", err)
	}
	metrics.Global.IncrementBriefsSent()
	metrics.Global.SetLastRun()
	logger.Info("brief delivered", "chars", len(text), "articles", len(curated))

	if history != nil {
		for _, a := range curated {
			if err := history.Mark(a.URL, a.Title); err != nil {
				logger.Warn("failed to mark article as sent", "url", a.URL, "error", err)
			}
		}
	}
	return nil
}

func curateOptions(cfg *config.Config) brief.Options {
	opts := brief.DefaultOptions()
	opts.PerCompany = cfg.PerCompanyCap
	opts.MaxArticles = cfg.MaxArticles
	opts.Dedup.SameDomainThreshold = cfg.SameDomainThreshold
	opts.Dedup.CrossDomainThreshold = cfg.CrossDomainThreshold

	if cfg.VocabConfigPath != "" {
		vocab, err := brief.LoadVocabulary(cfg.VocabConfigPath)
		if err != nil {
			logger.Warn("vocabulary override unreadable, using defaults", "path", cfg.VocabConfigPath, "error", err)
		} else {
			opts.Vocabulary = vocab
		}
	}
	return opts
}

// fetchAll queries every configured provider; each one failing is logged,
// not fatal, since the pipeline tolerates an empty input.
func fetchAll(ctx context.Context, cfg *config.Config, window schedule.Window) []brief.Raw {
	var raws []brief.Raw

	if cfg.NewsAPIKey != "" {
		client := newsapi.NewClient(cfg.NewsAPIKey, cfg.RequestTimeout)
		fetched, err := client.Fetch(ctx, window.ISOStart(), window.ISOEnd())
		if err != nil {
			logger.Warn("newsapi fetch failed", "error", err)
		} else {
			raws = append(raws, fetched...)
		}
	}

	urls, err := feeds.Load(cfg.FeedsConfigPath)
	if err != nil {
		logger.Warn("feeds config unreadable, skipping RSS", "path", cfg.FeedsConfigPath, "error", err)
		return raws
	}
	raws = append(raws, feeds.FetchAll(urls)...)
	return raws
}

func openHistory(cfg *config.Config) (storage.History, error) {
	if cfg.DatabaseURL != "" {
		return storage.NewPostgresHistory(cfg.DatabaseURL, cfg.HistoryTTLDays)
	}
	return storage.NewFileHistory(cfg.HistoryFilePath, cfg.HistoryTTLDays)
}

func dropAlreadySent(raws []brief.Raw, history storage.History) []brief.Raw {
	out := raws[:0]
	dropped := 0
	for _, r := range raws {
		if history.Seen(brief.CanonicalURL(r.URL)) {
			dropped++
			continue
		}
		out = append(out, r)
	}
	if dropped > 0 {
		logger.Info("dropped stories featured in earlier briefs", "count", dropped)
	}
	return out
}

func summarizeOrFallback(ctx context.Context, cfg *config.Config, curated []brief.Article, window schedule.Window) string {
	s, err := newSummarizer(ctx, cfg)
	if err != nil {
		logger.Error("summarizer unavailable, rendering fallback brief", "error", err)
		return render.Fallback(curated, window.DisplayStart(), window.DisplayEnd(), cfg.MaxBullets)
	}
	if closer, ok := s.(interface{ Close() }); ok {
		defer closer.Close()
	}

	text, err := s.Summarize(ctx, curated, window.DisplayStart(), window.DisplayEnd())
	if err != nil {
		logger.Error("summarization failed, rendering fallback brief", "error", err)
		return render.Fallback(curated, window.DisplayStart(), window.DisplayEnd(), cfg.MaxBullets)
	}
	return text
}

func newSummarizer(ctx context.Context, cfg *config.Config) (summarize.Summarizer, error) {
	switch cfg.SummaryProvider {
	case "gemini":
		return summarize.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.MaxBullets)
	default:
		return summarize.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxBullets), nil
	}
}
