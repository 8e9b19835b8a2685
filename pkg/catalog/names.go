package catalog

import "strings"

// LastName derives a display last name. An explicit override wins; otherwise
// "Last, First" forms use the part before the comma and plain "First Last"
// forms use the final space-separated token.
func LastName(full, override string) string {
	if override != "" {
		return override
	}
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	if idx := strings.Index(full, ","); idx >= 0 {
		return strings.TrimSpace(full[:idx])
	}
	parts := strings.Split(full, " ")
	return parts[len(parts)-1]
}
