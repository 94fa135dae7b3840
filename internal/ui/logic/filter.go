// Package logic contains the pure filtering and navigation rules.
package logic

import (
	"strings"

	"vimbo/internal/domain"
)

// Matches checks if an entry matches the given filter query.
// The query is compared case-insensitively against each field on its own.
func Matches(entry domain.CheatEntry, query string) bool {
	if query == "" {
		return true
	}
	return matchesLower(entry, strings.ToLower(query))
}

// Filter returns the entries matching query in dataset order.
// The result is a fresh slice and never aliases the dataset.
func Filter(dataset domain.Dataset, query string) []domain.CheatEntry {
	filtered := make([]domain.CheatEntry, 0, len(dataset))
	if query == "" {
		return append(filtered, dataset...)
	}

	q := strings.ToLower(query)
	for _, entry := range dataset {
		if matchesLower(entry, q) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesLower(entry domain.CheatEntry, q string) bool {
	return strings.Contains(strings.ToLower(entry.Command), q) ||
		strings.Contains(strings.ToLower(entry.Category), q) ||
		strings.Contains(strings.ToLower(entry.Description), q)
}
