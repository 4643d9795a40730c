package brief

import "strings"

// CanonicalURL cuts the URL at the first '?' and strips one trailing slash.
// Tracking parameters and slash variants must not defeat URL dedup.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSuffix(raw, "/")
}

// Normalize canonicalizes one provider record into an Article. Records with
// an empty title or URL after canonicalization are rejected. Source,
// published timestamp and description pass through untouched; missing
// values stay empty strings.
func Normalize(r Raw) (Article, bool) {
	u := CanonicalURL(r.URL)
	title := strings.TrimSpace(r.Title)
	if u == "" || title == "" {
		return Article{}, false
	}
	return Article{
		Title:       title,
		Source:      strings.TrimSpace(r.Source),
		PublishedAt: strings.TrimSpace(r.PublishedAt),
		URL:         u,
		Description: strings.TrimSpace(r.Description),
	}, true
}

// NormalizeAll normalizes a batch, dropping rejected records.
func NormalizeAll(raws []Raw) []Article {
	out := make([]Article, 0, len(raws))
	for _, r := range raws {
		if a, ok := Normalize(r); ok {
			out = append(out, a)
		}
	}
	return out
}
