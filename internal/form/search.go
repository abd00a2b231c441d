package form

import (
	"net/url"
	"strings"
)

// SearchForm carries the single search field posted by the search bar. An
// empty term is allowed and matches every entity.
type SearchForm struct {
	Term string
}

// ParseSearchForm reads a posted search body. The term is trimmed but kept
// otherwise verbatim; lowercasing happens in the repository query.
func ParseSearchForm(values url.Values) SearchForm {
	return SearchForm{Term: strings.TrimSpace(values.Get("search_term"))}
}
