// Where: internal/domain/answers/history.go
// What: Pure helpers for recently used answers and prompt suggestions.
// Why: Offer previous regions first without coupling prompts to config I/O.
package answers

import "strings"

// RecentLimit bounds how many recent values are remembered per field.
const RecentLimit = 5

// CommonRegions are offered as region suggestions after the user's own history.
var CommonRegions = []string{
	"europe-west1",
	"europe-west3",
	"us-central1",
	"us-east1",
	"asia-northeast1",
}

// BuildSuggestions merges the current default, history, and candidates into a unique list.
func BuildSuggestions(previous string, history, candidates []string) []string {
	suggestions := []string{}
	seen := map[string]struct{}{}
	add := func(value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return
		}
		if _, ok := seen[trimmed]; ok {
			return
		}
		suggestions = append(suggestions, trimmed)
		seen[trimmed] = struct{}{}
	}

	add(previous)
	for _, entry := range history {
		add(entry)
	}
	for _, candidate := range candidates {
		add(candidate)
	}
	return suggestions
}

// UpdateHistory inserts value at the front, drops duplicates, and enforces limit.
func UpdateHistory(history []string, value string, limit int) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return history
	}
	next := make([]string, 0, limit)
	seen := map[string]struct{}{}
	add := func(entry string) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return
		}
		if _, ok := seen[entry]; ok {
			return
		}
		if limit > 0 && len(next) >= limit {
			return
		}
		next = append(next, entry)
		seen[entry] = struct{}{}
	}

	add(trimmed)
	for _, entry := range history {
		add(entry)
	}
	return next
}
