package brief

// Options bundles the configuration constants the curation pipeline needs.
// Owned by the surrounding system, passed in explicitly.
type Options struct {
	Vocabulary  Vocabulary
	Dedup       DedupOptions
	PerCompany  int // max admitted articles per company
	MaxArticles int // overall payload bound handed to the summarizer
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Vocabulary:  DefaultVocabulary(),
		Dedup:       DefaultDedupOptions(),
		PerCompany:  7,
		MaxArticles: 120,
	}
}

// Stats counts what each stage dropped during one Curate call.
type Stats struct {
	Input      int
	Malformed  int // rejected by the normalizer
	Irrelevant int // rejected by the relevance gate
	Duplicates int // collapsed by dedup
	CapDropped int // dropped by per-company and overall caps
	Output     int
}

// Curate runs the full curation pipeline over raw provider records:
// normalize, classify, tag, dedupe, cap. Pure and deterministic: no
// clock, no randomness, no state shared between calls. An empty input
// yields an empty output, not an error.
func Curate(raws []Raw, opts Options) ([]Article, Stats) {
	stats := Stats{Input: len(raws)}

	articles := NormalizeAll(raws)
	stats.Malformed = len(raws) - len(articles)

	relevant := articles[:0]
	for _, a := range articles {
		if opts.Vocabulary.Relevant(a) {
			relevant = append(relevant, a)
		}
	}
	stats.Irrelevant = len(articles) - len(relevant)

	tagged := TagAll(relevant)
	deduped := Dedupe(tagged, opts.Dedup)
	stats.Duplicates = len(tagged) - len(deduped)

	capped := CapTotal(CapPerCompany(deduped, opts.PerCompany), opts.MaxArticles)
	stats.CapDropped = len(deduped) - len(capped)
	stats.Output = len(capped)

	return capped, stats
}
