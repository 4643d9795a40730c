// Package storage remembers which stories already appeared in a previous
// brief, so consecutive weekly runs do not repeat slow-moving coverage.
// The curation pipeline itself is stateless; history is applied by the app
// before curation.
package storage

// History is the sent-story record keyed by canonical article URL.
type History interface {
	// Seen reports whether the canonical URL was featured within the TTL.
	Seen(url string) bool
	// Mark records the canonical URL as featured now.
	Mark(url, title string) error
	// Close flushes and releases the backend.
	Close() error
}
