package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"ridebrief/internal/logger"
)

// PostgresHistory keeps the sent-story set in a shared database, for
// deployments where the job runs on ephemeral workers with no durable
// filesystem.
type PostgresHistory struct {
	db  *sql.DB
	ttl time.Duration
}

func NewPostgresHistory(databaseURL string, ttlDays int) (*PostgresHistory, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	h := &PostgresHistory{db: db, ttl: time.Duration(ttlDays) * 24 * time.Hour}
	if err := h.migrate(); err != nil {
		return nil, err
	}
	h.expire()
	return h, nil
}

func (h *PostgresHistory) migrate() error {
	_, err := h.db.Exec(`
		CREATE TABLE IF NOT EXISTS sent_articles (
			url     TEXT PRIMARY KEY,
			title   TEXT NOT NULL DEFAULT '',
			sent_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create sent_articles table: %w", err)
	}
	return nil
}

func (h *PostgresHistory) expire() {
	res, err := h.db.Exec(`DELETE FROM sent_articles WHERE sent_at < $1`, time.Now().Add(-h.ttl))
	if err != nil {
		logger.Warn("failed to expire sent articles", "error", err)
		return
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logger.Debug("expired sent articles", "count", n)
	}
}

func (h *PostgresHistory) Seen(url string) bool {
	var exists bool
	err := h.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM sent_articles WHERE url = $1 AND sent_at >= $2)`,
		url, time.Now().Add(-h.ttl),
	).Scan(&exists)
	if err != nil {
		logger.Warn("history lookup failed", "url", url, "error", err)
		return false
	}
	return exists
}

func (h *PostgresHistory) Mark(url, title string) error {
	_, err := h.db.Exec(`
		INSERT INTO sent_articles (url, title, sent_at) VALUES ($1, $2, now())
		ON CONFLICT (url) DO UPDATE SET sent_at = now()`,
		url, title)
	if err != nil {
		return fmt.Errorf("mark sent article: %w", err)
	}
	return nil
}

func (h *PostgresHistory) Close() error {
	return h.db.Close()
}
