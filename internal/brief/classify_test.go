package brief

import "testing"

func TestIncidentFilterDropsRegardlessOfCompany(t *testing.T) {
	vocab := DefaultVocabulary()
	a := Article{
		Title: "Uber driver stabbed during late-night ride",
		URL:   "https://ex.com/incident",
	}
	if vocab.Relevant(a) {
		t.Error("incident coverage must be dropped even when it names a tracked company")
	}
}

func TestGenericReportWithoutCommercialTermIsDropped(t *testing.T) {
	vocab := DefaultVocabulary()
	a := Article{
		Title: "New study finds ride-hailing growth across Africa",
		URL:   "https://ex.com/study",
	}
	if vocab.Relevant(a) {
		t.Error("bare study mention without a business action must be dropped")
	}
}

func TestGenericReportRescuedByCommercialTerm(t *testing.T) {
	vocab := DefaultVocabulary()
	a := Article{
		Title:       "New study finds ride-hailing growth across Africa",
		Description: "The report highlights a major funding round for local operators.",
		URL:         "https://ex.com/study-funding",
	}
	if !vocab.Relevant(a) {
		t.Error("study mention co-occurring with a commercial term must be kept")
	}
}

func TestPlainBusinessNewsIsKept(t *testing.T) {
	vocab := DefaultVocabulary()
	a := Article{
		Title: "Bolt expands grocery delivery to three new cities",
		URL:   "https://ex.com/bolt",
	}
	if !vocab.Relevant(a) {
		t.Error("ordinary business news must pass the gate")
	}
}

func TestFiltersEvaluateIndependently(t *testing.T) {
	// Incident terms reject even when commercial terms are present.
	vocab := DefaultVocabulary()
	a := Article{
		Title: "Grab announces funding round after driver killed in robbery",
		URL:   "https://ex.com/mixed",
	}
	if vocab.Relevant(a) {
		t.Error("incident filter must reject unconditionally, with no commercial rescue")
	}
}

func TestSubstitutedVocabulary(t *testing.T) {
	vocab := Vocabulary{
		IncidentTerms:   []string{"volcano"},
		ReportTerms:     []string{"whitepaper"},
		CommercialTerms: []string{"acquisition"},
	}
	if vocab.Relevant(Article{Title: "Volcano closes airport", URL: "https://ex.com/1"}) {
		t.Error("substituted incident term did not fire")
	}
	if vocab.Relevant(Article{Title: "Industry whitepaper published", URL: "https://ex.com/2"}) {
		t.Error("substituted report term did not fire")
	}
	if !vocab.Relevant(Article{Title: "Whitepaper on the acquisition", URL: "https://ex.com/3"}) {
		t.Error("substituted commercial term did not rescue")
	}
}

func TestShortTokensMatchWholeWordsOnly(t *testing.T) {
	vocab := Vocabulary{CommercialTerms: []string{"ipo"}, ReportTerms: []string{"survey"}}
	a := Article{
		Title: "Survey on tripod sales", // "ipo" inside "tripod" must not rescue
		URL:   "https://ex.com/tripod",
	}
	if vocab.Relevant(a) {
		t.Error("short token matched inside a longer word")
	}
	b := Article{Title: "Survey ahead of Grab IPO", URL: "https://ex.com/ipo"}
	if !vocab.Relevant(b) {
		t.Error("short token failed to match as a whole word")
	}
}
