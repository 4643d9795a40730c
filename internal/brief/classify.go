package brief

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the keyword tables the relevance filter runs on. It is
// built once (defaults, optionally overridden from YAML) and passed into
// the classifier explicitly so tests can substitute their own terms.
type Vocabulary struct {
	// IncidentTerms reject an article unconditionally: crime and accident
	// coverage is never business-relevant no matter which company it names.
	IncidentTerms []string `yaml:"incident_terms"`
	// ReportTerms mark generic study/survey coverage, which is dropped
	// unless a commercial term co-occurs.
	ReportTerms []string `yaml:"report_terms"`
	// CommercialTerms rescue a report mention: a concrete business action.
	CommercialTerms []string `yaml:"commercial_terms"`
}

// DefaultVocabulary returns the built-in keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		IncidentTerms: []string{
			"stabbed", "stabbing", "assault", "assaulted", "murder",
			"murdered", "homicide", "killed", "killing", "shooting",
			"shot dead", "rape", "raped", "kidnap", "kidnapped",
			"carjacking", "robbed", "robbery", "crash", "collision",
			"fatal accident", "dead body",
		},
		ReportTerms: []string{
			"study", "report", "survey", "research", "finds", "found that",
			"according to data",
		},
		CommercialTerms: []string{
			"launch", "launches", "launched", "expansion", "expands",
			"funding", "investment", "invests", "raises", "acquisition",
			"acquires", "merger", "m&a", "partnership", "partners",
			"pricing", "fare", "fares", "ipo", "regulation", "regulator",
			"license", "licence", "ban", "fine", "lawsuit", "strike",
			"electric vehicle", "ev fleet", "autonomous", "robotaxi",
			"self-driving", "product", "rollout", "deal", "subscription",
		},
	}
}

// LoadVocabulary reads keyword tables from a YAML file. Missing sections
// fall back to the defaults so an override file can replace just one table.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("read vocabulary: %w", err)
	}
	var loaded Vocabulary
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return v, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(loaded.IncidentTerms) > 0 {
		v.IncidentTerms = loaded.IncidentTerms
	}
	if len(loaded.ReportTerms) > 0 {
		v.ReportTerms = loaded.ReportTerms
	}
	if len(loaded.CommercialTerms) > 0 {
		v.CommercialTerms = loaded.CommercialTerms
	}
	return v, nil
}

// Relevant is the hard boolean gate: the incident filter and the
// generic-report filter are checked independently and either one rejects.
// No scoring.
func (v Vocabulary) Relevant(a Article) bool {
	return v.RelevantText(a.classifierText())
}

// RelevantText runs the same gate over an arbitrary lowercase-able text,
// so the output sanitizer can re-check rendered bullets.
func (v Vocabulary) RelevantText(text string) bool {
	text = strings.ToLower(text)
	if containsAny(text, v.IncidentTerms) {
		return false
	}
	if containsAny(text, v.ReportTerms) && !containsAny(text, v.CommercialTerms) {
		return false
	}
	return true
}

// containsAny distinguishes phrases and short words: phrases match as
// substrings, short tokens (<=3 runes) get a word-boundary regexp so "ev"
// does not fire inside "never", longer single words match as substrings.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}

		if strings.Contains(k, " ") {
			if strings.Contains(text, k) {
				return true
			}
			continue
		}

		if len(k) <= 3 {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
			if re.MatchString(text) {
				return true
			}
			continue
		}

		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
