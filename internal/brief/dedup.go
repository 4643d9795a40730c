package brief

// AggregatorDomains lists hosts known to republish others' reporting.
// Articles from these hosts are only deprioritized during dedup so the
// originating outlet survives a collision; they are never filtered out.
var AggregatorDomains = map[string]bool{
	"news.google.com":        true,
	"news.yahoo.com":         true,
	"finance.yahoo.com":      true,
	"www.msn.com":            true,
	"flipboard.com":          true,
	"biztoc.com":             true,
	"www.marketscreener.com": true,
	"ground.news":            true,
	"apple.news":             true,
	"feedly.com":             true,
}

// DedupOptions carries the similarity thresholds. The numbers are heuristic
// starting points, not tuned optima; keep them configurable.
type DedupOptions struct {
	// SameDomainThreshold applies when both articles share a host: a wire
	// story re-titled by one outlet is very likely the same story, so the
	// bar is lower.
	SameDomainThreshold float64
	// CrossDomainThreshold applies across hosts and is stricter.
	CrossDomainThreshold float64
	// Aggregators biases scan order; nil falls back to AggregatorDomains.
	Aggregators map[string]bool
}

// DefaultDedupOptions returns the default thresholds.
func DefaultDedupOptions() DedupOptions {
	return DedupOptions{
		SameDomainThreshold:  0.80,
		CrossDomainThreshold: 0.87,
		Aggregators:          AggregatorDomains,
	}
}

// Dedupe collapses near-duplicate stories, keeping the earliest survivor in
// scan order. The scan order is a stable partition: non-aggregator hosts
// first in original order, then aggregator hosts in original order, so an
// authoritative outlet wins over a repost. O(n²) against the kept list,
// fine at tens-to-hundreds of articles.
func Dedupe(articles []Article, opts DedupOptions) []Article {
	agg := opts.Aggregators
	if agg == nil {
		agg = AggregatorDomains
	}

	ordered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if !agg[a.Domain()] {
			ordered = append(ordered, a)
		}
	}
	for _, a := range articles {
		if agg[a.Domain()] {
			ordered = append(ordered, a)
		}
	}

	var kept []Article
	for _, cand := range ordered {
		dup := false
		for _, k := range kept {
			if isDuplicate(cand, k, opts) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, cand)
		}
	}
	return kept
}

func isDuplicate(a, b Article, opts DedupOptions) bool {
	if a.URL == b.URL {
		return true
	}
	sim := TitleSimilarity(a.NormalizedTitle(), b.NormalizedTitle())
	if a.Domain() != "" && a.Domain() == b.Domain() {
		return sim >= opts.SameDomainThreshold
	}
	return sim >= opts.CrossDomainThreshold
}

// TitleSimilarity is a normalized edit-distance ratio over two normalized
// titles: 1.0 identical, 0.0 disjoint. Symmetric.
func TitleSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	return 1.0 - float64(editDistance(ra, rb))/float64(longest)
}

// editDistance is plain Levenshtein with a two-row table.
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
