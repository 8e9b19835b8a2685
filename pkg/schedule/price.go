package schedule

import "math"

// Total sums the prices of the non-conflicting selected sections, rounded to
// the nearest whole unit for display. Conflicting sections stay in the
// selection list but contribute nothing.
func Total(sections []Selected) int {
	var sum float64
	for _, s := range sections {
		if s.IsConflicting {
			continue
		}
		sum += s.Price
	}
	return int(math.Round(sum))
}
