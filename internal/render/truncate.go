package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Headline shrink schedule for FitMessage. Lengths are rune counts of the
// visible headline inside the link anchor.
const (
	headlineStart = 140
	headlineStep  = 20
	headlineMin   = 40
	ellipsis      = "…"
)

var anchorRe = regexp.MustCompile(`(<a href="[^"]*">)([^<]*)(</a>)`)

// FitMessage degrades the rendered brief until it fits the hard character
// ceiling. If the text already fits it is returned unchanged. Otherwise the
// visible headline of every bullet is truncated to a shrinking maximum
// length, then whole bullets are dropped starting from the last one, and
// whatever still exceeds the ceiling after that (overflow in a non-bullet
// line, e.g. a runaway trend sentence) is cut at the rune level. The
// returned text never exceeds limit runes.
func FitMessage(text string, limit int) string {
	if msgLen(text) <= limit {
		return text
	}

	for max := headlineStart; max >= headlineMin; max -= headlineStep {
		shrunk := shrinkHeadlines(text, max)
		if msgLen(shrunk) <= limit {
			return shrunk
		}
		text = shrunk
	}

	lines := strings.Split(text, "\n")
	for msgLen(strings.Join(lines, "\n")) > limit {
		i := lastBulletIndex(lines)
		if i < 0 {
			break
		}
		lines = append(lines[:i], lines[i+1:]...)
	}
	return hardTruncate(strings.Join(lines, "\n"), limit)
}

// hardTruncate cuts text to at most limit runes, backing up to the last
// full line when the cut lands mid-line.
func hardTruncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		return cut[:i]
	}
	return cut
}

func msgLen(s string) int {
	return utf8.RuneCountInString(s)
}

// shrinkHeadlines truncates every link anchor's visible text to max runes.
func shrinkHeadlines(text string, max int) string {
	return anchorRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := anchorRe.FindStringSubmatch(m)
		headline := sub[2]
		runes := []rune(headline)
		if len(runes) <= max {
			return m
		}
		return sub[1] + strings.TrimSpace(string(runes[:max-1])) + ellipsis + sub[3]
	})
}

func lastBulletIndex(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), Bullet) {
			return i
		}
	}
	return -1
}
