package brief

// CapPerCompany bounds per-company representation: strict first-come
// first-served over the input order. A multi-company article is dropped
// whole once ANY of its companies is at the cap; it is never partially
// admitted. Articles with no company tag are dropped here, never passed on
// with a guessed attribution. The counter is local to the call.
func CapPerCompany(articles []Article, k int) []Article {
	counts := make(map[Company]int, len(Companies))
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if !a.Tagged() {
			continue
		}
		over := false
		for _, c := range a.Companies {
			if counts[c] >= k {
				over = true
				break
			}
		}
		if over {
			continue
		}
		for _, c := range a.Companies {
			counts[c]++
		}
		out = append(out, a)
	}
	return out
}

// CapTotal truncates the list to at most n entries. A plain payload bound,
// not a quality selection.
func CapTotal(articles []Article, n int) []Article {
	if n >= 0 && len(articles) > n {
		return articles[:n]
	}
	return articles
}
