package brief

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Article is one curated news item moving through the pipeline.
type Article struct {
	Title       string
	Source      string
	PublishedAt string // ISO-8601 string from the provider, kept opaque
	URL         string // canonical: no query string, no trailing slash
	Description string

	Companies []Company // populated by Tag, empty until then
}

// Company is one of the tracked competitors. The set is closed; rendered
// labels that parse to nothing are dropped, never guessed.
type Company string

const (
	CompanyUber    Company = "Uber"
	CompanyDiDi    Company = "DiDi"
	CompanyBolt    Company = "Bolt"
	CompanyInDrive Company = "inDrive"
	CompanyCabify  Company = "Cabify"
	CompanyYassir  Company = "Yassir"
	CompanyHeetch  Company = "Heetch"
	CompanyGrab    Company = "Grab"
	CompanyGojek   Company = "Gojek"
)

// Companies lists the tracked set in catalog order.
var Companies = []Company{
	CompanyUber,
	CompanyDiDi,
	CompanyBolt,
	CompanyInDrive,
	CompanyCabify,
	CompanyYassir,
	CompanyHeetch,
	CompanyGrab,
	CompanyGojek,
}

// ParseCompany resolves a rendered company label back to a tracked company.
func ParseCompany(label string) (Company, bool) {
	label = strings.TrimSpace(label)
	for _, c := range Companies {
		if strings.EqualFold(label, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Catalog maps each tracked company to its matching patterns: alternative
// spellings, former brand names and local-language names. Word-bounded and
// case-insensitive. Never mutated at runtime.
var Catalog = map[Company]*regexp.Regexp{
	CompanyUber:    regexp.MustCompile(`(?i)\b(uber|uber technologies)\b`),
	CompanyDiDi:    regexp.MustCompile(`(?i)\b(didi|didi chuxing)\b|滴滴`),
	CompanyBolt:    regexp.MustCompile(`(?i)\b(bolt|taxify)\b`),
	CompanyInDrive: regexp.MustCompile(`(?i)\b(indrive|indriver)\b`),
	CompanyCabify:  regexp.MustCompile(`(?i)\bcabify\b`),
	CompanyYassir:  regexp.MustCompile(`(?i)\byassir\b`),
	CompanyHeetch:  regexp.MustCompile(`(?i)\bheetch\b`),
	CompanyGrab:    regexp.MustCompile(`(?i)\b(grab|grabtaxi)\b`),
	CompanyGojek:   regexp.MustCompile(`(?i)\b(gojek|go-jek)\b`),
}

// Raw is a provider record before normalization. Each provider adapter
// (NewsAPI, RSS) maps its own schema into this shape.
type Raw struct {
	Title       string
	Source      string
	PublishedAt string
	URL         string
	Description string
}

// Domain returns the host component of the article URL, lowercased.
func (a Article) Domain() string {
	u, err := url.Parse(a.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Host)
}

// NormalizedTitle returns the title lowercased with everything that is not
// a letter or digit collapsed to single spaces. Used as the similarity view
// for dedup, never shown to users.
func (a Article) NormalizedTitle() string {
	return normalizeText(a.Title)
}

// Tagged reports whether the article mentions at least one tracked company.
func (a Article) Tagged() bool {
	return len(a.Companies) > 0
}

// classifierText is the lowercase view the classifier and tagger operate on.
func (a Article) classifierText() string {
	return strings.ToLower(a.Title + " " + a.Description + " " + a.URL)
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b = append(b, r)
		} else {
			b = append(b, ' ')
		}
	}
	return strings.Join(strings.Fields(string(b)), " ")
}
