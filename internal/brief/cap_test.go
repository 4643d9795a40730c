package brief

import (
	"fmt"
	"testing"
)

func tagged(url string, companies ...Company) Article {
	return Article{Title: "t " + url, URL: url, Companies: companies}
}

func TestCapPerCompanyInvariant(t *testing.T) {
	const k = 3
	var in []Article
	for i := 0; i < 10; i++ {
		in = append(in, tagged(fmt.Sprintf("https://ex.com/u%d", i), CompanyUber))
	}
	out := CapPerCompany(in, k)
	if len(out) != k {
		t.Fatalf("expected %d admitted, got %d", k, len(out))
	}
	// Strict first-come order.
	for i := 0; i < k; i++ {
		if out[i].URL != in[i].URL {
			t.Errorf("admission order broken at %d: %s", i, out[i].URL)
		}
	}
}

func TestCapPerCompanyDropsUntagged(t *testing.T) {
	in := []Article{
		{Title: "untagged", URL: "https://ex.com/none"},
		tagged("https://ex.com/u", CompanyUber),
	}
	out := CapPerCompany(in, 7)
	if len(out) != 1 || out[0].URL != "https://ex.com/u" {
		t.Errorf("untagged article must never reach capped output, got %v", out)
	}
}

func TestCapPerCompanyMultiCompanyAllOrNothing(t *testing.T) {
	in := []Article{
		tagged("https://ex.com/1", CompanyUber),
		tagged("https://ex.com/2", CompanyUber, CompanyGrab), // Uber at cap: dropped whole
		tagged("https://ex.com/3", CompanyGrab),              // Grab still free
	}
	out := CapPerCompany(in, 1)
	if len(out) != 2 {
		t.Fatalf("expected 2 admitted, got %d", len(out))
	}
	if out[0].URL != "https://ex.com/1" || out[1].URL != "https://ex.com/3" {
		t.Errorf("unexpected admissions: %v", out)
	}
}

func TestCapPerCompanyCountsEveryTag(t *testing.T) {
	in := []Article{
		tagged("https://ex.com/1", CompanyUber, CompanyGrab),
		tagged("https://ex.com/2", CompanyGrab),
	}
	out := CapPerCompany(in, 1)
	// The multi-company admission consumed Grab's slot.
	if len(out) != 1 || out[0].URL != "https://ex.com/1" {
		t.Errorf("expected Grab slot consumed by multi-company article, got %v", out)
	}
}

func TestCapTotal(t *testing.T) {
	in := []Article{
		tagged("https://ex.com/1", CompanyUber),
		tagged("https://ex.com/2", CompanyBolt),
		tagged("https://ex.com/3", CompanyGrab),
	}
	if got := CapTotal(in, 2); len(got) != 2 {
		t.Errorf("expected truncation to 2, got %d", len(got))
	}
	if got := CapTotal(in, 10); len(got) != 3 {
		t.Errorf("expected list untouched under the bound, got %d", len(got))
	}
}
