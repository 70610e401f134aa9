package service

import "strings"

// matchesTerm reports whether any field contains term, ignoring case. An empty term matches.
func matchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// anyValue treats "" and "all" as no filter.
func anyValue(filter string) bool {
	return filter == "" || strings.EqualFold(filter, "all")
}
