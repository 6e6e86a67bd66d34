package modulegroups

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchActive reports whether a search is in progress. An empty box means
// "no search", not "match nothing". The tab bar is disabled while a search
// is active so group changes cannot fight the text filter.
func SearchActive(text string) bool {
	return text != ""
}

// searchMatches does a Unicode case-folded substring test of the needle
// against the module's localized name and every alias. The Caser is built
// per call: a cases.Caser carries internal state and must not be shared.
func searchMatches(needle string, m Module) bool {
	folder := cases.Fold()
	folded := folder.String(needle)
	if strings.Contains(folder.String(m.Name), folded) {
		return true
	}
	for _, alias := range m.Aliases {
		if strings.Contains(folder.String(alias), folded) {
			return true
		}
	}
	return false
}
