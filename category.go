package networth

import "strings"

// Category groups financial items under a display name, with a set of search
// keywords used for auto-suggestion during entry and import.
type Category struct {
	ID       string
	Name     string
	Keywords []string
}

// matches reports whether text (already lowercased) appears in the category
// name or any of its keywords.
func (c Category) matches(text string) bool {
	if strings.Contains(strings.ToLower(c.Name), text) {
		return true
	}
	for _, k := range c.Keywords {
		if strings.Contains(strings.ToLower(k), text) {
			return true
		}
	}
	return false
}

// normalizeKeywords lowercases, trims and de-duplicates keywords, keeping
// their first-seen order.
func normalizeKeywords(keywords []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
