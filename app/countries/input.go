package countries

import "unicode/utf8"

// MinSearchRunes is the shortest non-empty term that triggers a search.
const MinSearchRunes = 3

// AcceptsSearchInput reports whether term should update the coordinator:
// empty clears the search, otherwise it needs MinSearchRunes characters.
func AcceptsSearchInput(term string) bool {
	return term == "" || utf8.RuneCountInString(term) >= MinSearchRunes
}
