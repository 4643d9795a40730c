// Package render builds the final Telegram message and defends the
// rendered text against summarizer drift: bullet repair, output-level
// dedup, cap re-enforcement and size-bounded truncation.
package render

import (
	"fmt"
	"strings"

	"ridebrief/internal/brief"
)

const (
	// Bullet is the single expected bullet glyph; stray markers from the
	// summarizer are canonicalized to it.
	Bullet = "•"

	// LabelSeparator splits the visible headline from the trailing company
	// label, and company names from each other in multi-company bullets.
	LabelSeparator = " — "

	topHeader   = "<b>📌 Top stories</b>"
	trendHeader = "<b>📌 Trend:</b>"
)

// Header renders the fixed title and coverage lines of the brief.
func Header(coverageStart, coverageEnd string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>📌 Weekly Competitor Brief — %s</b>\n", coverageEnd))
	b.WriteString(fmt.Sprintf("<b>📌 Coverage:</b> %s – %s\n\n", coverageStart, coverageEnd))
	b.WriteString(topHeader + "\n")
	return b.String()
}

// FormatBullet renders one curated article as a link-bearing one-line item
// with its trailing company label.
func FormatBullet(a brief.Article) string {
	labels := make([]string, 0, len(a.Companies))
	for _, c := range a.Companies {
		labels = append(labels, string(c))
	}
	return fmt.Sprintf("%s <a href=\"%s\">%s</a>%s%s",
		Bullet, a.URL, htmlEscape(a.Title), LabelSeparator, strings.Join(labels, ", "))
}

// Fallback renders the brief directly from the curated articles when the
// summarization service is unavailable. Same structure as the AI output so
// the sanitizer and truncator apply unchanged.
func Fallback(articles []brief.Article, coverageStart, coverageEnd string, maxBullets int) string {
	var b strings.Builder
	b.WriteString(Header(coverageStart, coverageEnd))
	n := 0
	for _, a := range articles {
		if n >= maxBullets {
			break
		}
		b.WriteString(FormatBullet(a) + "\n")
		n++
	}
	b.WriteString("\n" + trendHeader + " Coverage window summary unavailable this week.\n")
	return b.String()
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
