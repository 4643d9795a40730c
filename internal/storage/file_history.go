package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// SentItem is one featured story in the JSON history file.
type SentItem struct {
	URL    string    `json:"url"`
	Title  string    `json:"title"`
	SentAt time.Time `json:"sent_at"`
}

// FileHistory keeps the sent-story set in a JSON file.
type FileHistory struct {
	filePath string
	ttl      time.Duration
	items    map[string]SentItem
	mu       sync.RWMutex
}

// NewFileHistory loads (or creates) the history file and drops entries
// older than ttlDays.
func NewFileHistory(filePath string, ttlDays int) (*FileHistory, error) {
	h := &FileHistory{
		filePath: filePath,
		ttl:      time.Duration(ttlDays) * 24 * time.Hour,
		items:    make(map[string]SentItem),
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	h.expire()
	return h, nil
}

func (h *FileHistory) load() error {
	data, err := os.ReadFile(h.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	var items []SentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse history file: %w", err)
	}
	for _, item := range items {
		h.items[item.URL] = item
	}
	return nil
}

func (h *FileHistory) expire() {
	h.mu.Lock()
	defer h.mu.Unlock()
	cutoff := time.Now().Add(-h.ttl)
	for url, item := range h.items {
		if item.SentAt.Before(cutoff) {
			delete(h.items, url)
		}
	}
}

func (h *FileHistory) Seen(url string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	item, ok := h.items[url]
	if !ok {
		return false
	}
	return time.Since(item.SentAt) <= h.ttl
}

func (h *FileHistory) Mark(url, title string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items[url] = SentItem{URL: url, Title: title, SentAt: time.Now()}
	return nil
}

// Close writes the history back to disk.
func (h *FileHistory) Close() error {
	h.mu.RLock()
	items := make([]SentItem, 0, len(h.items))
	for _, item := range h.items {
		items = append(items, item)
	}
	h.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(h.filePath, data, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
