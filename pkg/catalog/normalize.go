package catalog

import (
	"regexp"
	"strings"
)

// deptNumPattern matches the common department + course-number form with an
// optional hyphen or space separator. Departments run 2-4 letters (CIS, MEAM),
// numbers 3-4 digits.
var deptNumPattern = regexp.MustCompile(`(?i)^([a-z]{2,4})[- ]?([0-9]{3,4})$`)

// NormalizeCode canonicalizes a raw course identifier into DEPT-NNNN.
//
// Fallback tiers for identifiers the pattern doesn't match: strip everything
// that isn't a letter or digit, uppercase, then split 8-character remainders
// as [0:4]-[4:8] and 7-character remainders as [0:4]-[3:7]. The 7-character
// split overlaps by one character on purpose; it matches the ingestion
// behavior this data was historically processed with, and callers key on the
// result. Anything else is returned cleaned but unsplit. An empty or blank
// input returns "", which callers treat as "drop this row".
func NormalizeCode(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if m := deptNumPattern.FindStringSubmatch(raw); m != nil {
		return strings.ToUpper(m[1]) + "-" + m[2]
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ToUpper(b.String())

	switch len(cleaned) {
	case 8:
		return cleaned[0:4] + "-" + cleaned[4:8]
	case 7:
		return cleaned[0:4] + "-" + cleaned[3:7]
	default:
		return cleaned
	}
}
