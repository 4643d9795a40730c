package brief

// Tag annotates the article with every tracked company it mentions. Each
// company short-circuits on its first matching pattern; companies are
// checked independently, so a cross-company partnership story ends up with
// several tags. Zero tags is allowed here; the capper drops those.
func Tag(a Article) Article {
	text := a.classifierText()
	var tagged []Company
	for _, c := range Companies {
		if Catalog[c].MatchString(text) {
			tagged = append(tagged, c)
		}
	}
	a.Companies = tagged
	return a
}

// TagAll tags a batch in place order.
func TagAll(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, Tag(a))
	}
	return out
}
