package render

import (
	"regexp"
	"strings"

	"ridebrief/internal/brief"
)

var (
	strayBulletRe = regexp.MustCompile(`^\s*([-*–—·]|\d+[.)])\s+`)
	hrefRe        = regexp.MustCompile(`href="([^"]+)"`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
)

// Sanitize repairs formatting drift in the summarizer's rendered text and
// re-enforces the rules already applied to the curated input. Steps, in
// order: bullet-prefix canonicalization, link-target dedup, per-company cap
// re-enforcement in the top-stories block, content re-filtering, and a
// bullet-count cap. Malformed bullets are dropped, never repaired by
// guessing.
func Sanitize(text string, vocab brief.Vocabulary, perCompany, maxBullets int) string {
	lines := strings.Split(text, "\n")

	seenLinks := make(map[string]bool)
	counts := make(map[brief.Company]int)
	bullets := 0
	inTop := false

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isHeaderLine(line) {
			inTop = strings.Contains(line, "Top stories")
			out = append(out, line)
			continue
		}

		canon, isBullet := canonicalBullet(line)
		if !isBullet {
			out = append(out, line)
			continue
		}

		link := extractLink(canon)
		if link != "" {
			key := brief.CanonicalURL(link)
			if seenLinks[key] {
				continue
			}
			seenLinks[key] = true
		}

		if inTop {
			companies, ok := parseLabel(canon)
			if !ok {
				continue // unlabeled bullet: drop, do not guess
			}
			over := false
			for _, c := range companies {
				if counts[c] >= perCompany {
					over = true
					break
				}
			}
			if over {
				continue
			}
			if !vocab.RelevantText(plainText(canon)) {
				continue
			}
			if bullets >= maxBullets {
				continue
			}
			for _, c := range companies {
				counts[c]++
			}
			bullets++
		} else if !vocab.RelevantText(plainText(canon)) {
			continue
		}

		out = append(out, canon)
	}

	return strings.Join(out, "\n")
}

func isHeaderLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "<b>")
}

// canonicalBullet normalizes any stray bullet marker to the expected glyph.
// The canonical glyph itself counts with or without trailing space, so a
// drifted "•<a ...>" line still enters the bullet path; other markers need
// the space to avoid claiming ordinary prose.
func canonicalBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line, false
	}
	if rest, ok := strings.CutPrefix(trimmed, Bullet); ok {
		return Bullet + " " + strings.TrimSpace(rest), true
	}
	if m := strayBulletRe.FindString(trimmed); m != "" {
		return Bullet + " " + strings.TrimSpace(trimmed[len(m):]), true
	}
	return line, false
}

func extractLink(line string) string {
	if m := hrefRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// parseLabel reads the trailing company label of a bullet. Every name must
// resolve to a tracked company; anything else fails the parse.
func parseLabel(line string) ([]brief.Company, bool) {
	plain := plainText(line)
	i := strings.LastIndex(plain, LabelSeparator)
	if i < 0 {
		return nil, false
	}
	parts := strings.Split(plain[i+len(LabelSeparator):], ",")
	companies := make([]brief.Company, 0, len(parts))
	for _, p := range parts {
		c, ok := brief.ParseCompany(p)
		if !ok {
			return nil, false
		}
		companies = append(companies, c)
	}
	if len(companies) == 0 {
		return nil, false
	}
	return companies, true
}

func plainText(line string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(line, ""))
}
