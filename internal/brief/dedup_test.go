package brief

import (
	"math"
	"testing"
)

func art(title, url string) Article {
	return Article{Title: title, URL: url}
}

func TestDedupeByCanonicalURL(t *testing.T) {
	// Normalization already canonicalized these to the same URL.
	in := []Article{
		art("Uber launches service in Lagos", "https://ex.com/lagos"),
		art("Uber launches service in Lagos (updated)", "https://ex.com/lagos"),
	}
	out := Dedupe(in, DefaultDedupOptions())
	if len(out) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(out))
	}
	if out[0].Title != "Uber launches service in Lagos" {
		t.Errorf("expected earliest article kept, got %q", out[0].Title)
	}
}

func TestDedupeFuzzyTitleSameDomain(t *testing.T) {
	in := []Article{
		art("Uber launches service in Lagos", "https://ex.com/a"),
		art("Uber Launches Service In Lagos!!", "https://ex.com/b"),
	}
	out := Dedupe(in, DefaultDedupOptions())
	if len(out) != 1 {
		t.Fatalf("expected punctuation/case variant collapsed, got %d survivors", len(out))
	}
}

func TestSameDomainThresholdIsLooserThanCrossDomain(t *testing.T) {
	// Similarity of this pair is ~0.86: above the same-domain bar (0.80),
	// below the cross-domain bar (0.87).
	titleA := "Uber launches service in Lagos"
	titleB := "Uber launches service in Lagos soon"

	sameDomain := Dedupe([]Article{
		art(titleA, "https://ex.com/a"),
		art(titleB, "https://ex.com/b"),
	}, DefaultDedupOptions())
	if len(sameDomain) != 1 {
		t.Errorf("same-domain near-duplicate should collapse, got %d survivors", len(sameDomain))
	}

	crossDomain := Dedupe([]Article{
		art(titleA, "https://one.com/a"),
		art(titleB, "https://two.com/b"),
	}, DefaultDedupOptions())
	if len(crossDomain) != 2 {
		t.Errorf("cross-domain pair under the stricter bar should survive, got %d", len(crossDomain))
	}
}

func TestDedupeCrossDomainAggregatorLoses(t *testing.T) {
	// Aggregator listed first in the input; the partition still prefers
	// the originating outlet.
	in := []Article{
		art("Uber launches robotaxi service in Austin", "https://news.google.com/articles/abc"),
		art("Uber launches robotaxi services in Austin", "https://techcrunch.com/uber-austin"),
	}
	out := Dedupe(in, DefaultDedupOptions())
	if len(out) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(out))
	}
	if out[0].Domain() != "techcrunch.com" {
		t.Errorf("expected non-aggregator survivor, got %s", out[0].Domain())
	}
}

func TestDedupeKeepsOriginalRelativeOrder(t *testing.T) {
	in := []Article{
		art("Bolt expands to Warsaw", "https://one.com/a"),
		art("Grab posts record quarter", "https://two.com/b"),
		art("Cabify partners with city of Madrid", "https://three.com/c"),
	}
	out := Dedupe(in, DefaultDedupOptions())
	if len(out) != 3 {
		t.Fatalf("expected all distinct articles kept, got %d", len(out))
	}
	for i := range in {
		if out[i].URL != in[i].URL {
			t.Errorf("order disturbed at %d: %s", i, out[i].URL)
		}
	}
}

func TestTitleSimilarityProperties(t *testing.T) {
	a := "uber launches robotaxi service in austin"
	b := "uber launches robotaxi services in austin"

	if got := TitleSimilarity(a, a); got != 1.0 {
		t.Errorf("identical strings: got %f", got)
	}
	if got := TitleSimilarity(a, ""); got != 0.0 {
		t.Errorf("empty side: got %f", got)
	}
	ab, ba := TitleSimilarity(a, b), TitleSimilarity(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("similarity not symmetric: %f vs %f", ab, ba)
	}
	if ab < 0.9 {
		t.Errorf("one-edit pair should score high, got %f", ab)
	}
	if got := TitleSimilarity("completely different words", a); got > 0.5 {
		t.Errorf("disjoint pair scored too high: %f", got)
	}
}

func TestDedupeEmptyInput(t *testing.T) {
	if out := Dedupe(nil, DefaultDedupOptions()); len(out) != 0 {
		t.Errorf("expected empty output for empty input, got %d", len(out))
	}
}
