// Package summarize turns the curated article set into the rendered weekly
// brief via a generative model. The output contract is enforced again by
// the render sanitizer, so drift here is contained.
package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ridebrief/internal/brief"
)

// Summarizer produces the rendered brief text for the coverage window.
type Summarizer interface {
	Summarize(ctx context.Context, articles []brief.Article, coverageStart, coverageEnd string) (string, error)
}

// promptArticle is the JSON shape handed to the model: exactly the curated
// fields, nothing the model could be tempted to invent from.
type promptArticle struct {
	Title       string   `json:"title"`
	Source      string   `json:"source,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Companies   []string `json:"companies"`
}

const systemPrompt = "You are a concise industry analyst for ride-hailing."

// buildPrompt writes out the fixed output contract. The structure must
// match what render.Sanitize parses: a bold title line, a coverage line, a
// "Top stories" block of link bullets with trailing company labels, and a
// one-sentence trend line.
func buildPrompt(articles []brief.Article, coverageStart, coverageEnd string, maxBullets int) (string, error) {
	items := make([]promptArticle, 0, len(articles))
	for _, a := range articles {
		companies := make([]string, 0, len(a.Companies))
		for _, c := range a.Companies {
			companies = append(companies, string(c))
		}
		items = append(items, promptArticle{
			Title:       a.Title,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			Description: a.Description,
			Companies:   companies,
		})
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal articles: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Generate a weekly competitor news brief for ride-hailing. Companies: Uber, DiDi (滴滴), Bolt, inDrive, Cabify, Yassir, Heetch, Grab, Gojek.

Coverage Window: %s – %s

Use ONLY the links and headlines from the JSON article list below. Do not invent links or stories. Remove duplicates.

ARTICLES (JSON array):
%s

Output structure EXACTLY (HTML, no markdown):

<b>📌 Weekly Competitor Brief — %s</b>
<b>📌 Coverage:</b> %s – %s

<b>📌 Top stories</b>
• <a href="URL">News in one neutral sentence</a> — Company
(repeat for up to %d most important, unique items; for stories about several tracked companies join names with ", " in the trailing label)

<b>📌 Trend:</b> One sentence capturing the dominant theme of the week.

Rules:
- Each bullet is exactly one line, starts with "•", ends with the company label.
- The company label may only use the nine tracked company names.
- If a company has no coverage this week, omit it (no "no significant news" lines).
- Keep headlines one sentence and neutral. No scores, no extra sections.
`, coverageStart, coverageEnd, payload, coverageEnd, coverageStart, coverageEnd, maxBullets)
	return b.String(), nil
}
