package search

import "strings"

// historyLimit caps the remembered search terms.
const historyLimit = 5

// AddToHistory prepends term to history: whitespace is trimmed, blanks are
// ignored, a case-insensitive duplicate moves to the front with the new
// casing, and the list never exceeds five entries.
func AddToHistory(history []string, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return history
	}

	lowered := strings.ToLower(term)
	updated := make([]string, 0, historyLimit)
	updated = append(updated, term)
	for _, existing := range history {
		if strings.ToLower(existing) == lowered {
			continue
		}
		updated = append(updated, existing)
		if len(updated) == historyLimit {
			break
		}
	}
	return updated
}
