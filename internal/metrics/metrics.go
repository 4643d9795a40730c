package metrics

import (
	"sync"
	"time"
)

// Metrics tracks per-process counters for the weekly brief run. Exposed as
// JSON on /metrics when monitoring is enabled.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched    int64
	ArticlesIrrelevant int64
	DuplicatesFiltered int64
	ArticlesCapped     int64
	ArticlesCurated    int64
	BriefsSent         int64

	// Timings
	LastRunDuration    time.Duration
	TotalRunDuration   time.Duration
	RunCount           int64
	AverageRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) AddIrrelevant(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesIrrelevant += int64(n)
}

func (m *Metrics) AddDuplicates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += int64(n)
}

func (m *Metrics) AddCapped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesCapped += int64(n)
}

func (m *Metrics) SetCurated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesCurated = int64(n)
}

func (m *Metrics) IncrementBriefsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BriefsSent++
}

func (m *Metrics) RecordRunDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRunDuration = duration
	m.TotalRunDuration += duration
	m.RunCount++

	if m.RunCount > 0 {
		m.AverageRunDuration = m.TotalRunDuration / time.Duration(m.RunCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":        m.ArticlesFetched,
		"articles_irrelevant":     m.ArticlesIrrelevant,
		"duplicates_filtered":     m.DuplicatesFiltered,
		"articles_capped":         m.ArticlesCapped,
		"articles_curated":        m.ArticlesCurated,
		"briefs_sent":             m.BriefsSent,
		"last_run_duration_ms":    m.LastRunDuration.Milliseconds(),
		"average_run_duration_ms": m.AverageRunDuration.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}
