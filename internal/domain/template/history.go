// Where: cli/internal/domain/template/history.go
// What: Pure helpers for recently used template ids and suggestions.
// Why: Keep history logic deterministic and independent from I/O.
package template

import "strings"

// BuildSuggestions merges the previous id, history, and candidates into a unique list.
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

// UpdateHistory moves templateID to the front and enforces limit.
func UpdateHistory(history []string, templateID string, limit int) []string {
	trimmed := strings.TrimSpace(templateID)
	if trimmed == "" {
		return history
	}
	next := make([]string, 0, len(history)+1)
	seen := map[string]struct{}{}
	for _, entry := range append([]string{trimmed}, history...) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		if limit > 0 && len(next) >= limit {
			break
		}
		next = append(next, entry)
		seen[entry] = struct{}{}
	}
	return next
}

// TemplateIDs returns the ids of templates in order.
func TemplateIDs(templates []FunctionTemplate) []string {
	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
	}
	return ids
}
