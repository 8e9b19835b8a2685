package schedule

import (
	"iter"
	"strings"
)

// Scope selects which term labels are eligible for calendar projection.
type Scope string

const (
	ScopeOverall Scope = "overall"
	ScopeQ1      Scope = "q1"
	ScopeQ2      Scope = "q2"
)

// ParseScope maps user input to a Scope, defaulting to Overall.
func ParseScope(s string) Scope {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeQ1:
		return ScopeQ1
	case ScopeQ2:
		return ScopeQ2
	default:
		return ScopeOverall
	}
}

// terms returns the term labels visible under this scope. Full-term sections
// are always in view; quarter scopes add their own quarter.
func (s Scope) terms() map[string]struct{} {
	switch s {
	case ScopeQ1:
		return map[string]struct{}{"Full": {}, "Q1": {}}
	case ScopeQ2:
		return map[string]struct{}{"Full": {}, "Q2": {}}
	default:
		return map[string]struct{}{"Full": {}, "Q1": {}, "Q2": {}}
	}
}

// Event is one weekly calendar block for one meeting day of a section.
type Event struct {
	Title   string `json:"title"`
	Weekday int    `json:"weekday"` // Mon=1 .. Fri=5
	Start   string `json:"start"`   // HH:MM:00
	End     string `json:"end"`
	Color   string `json:"color"`
}

// weekdays maps meeting-day letters to weekday ordinals. Only weekdays are
// modeled; any other letter produces no event.
var weekdays = map[rune]int{
	'M': 1,
	'T': 2,
	'W': 3,
	'R': 4,
	'F': 5,
}

var termColors = map[string]string{
	"Full": "blue",
	"Q1":   "green",
	"Q2":   "orange",
}

// TermColor returns the display color for a term label, gray for anything
// unrecognized.
func TermColor(term string) string {
	if c, ok := termColors[term]; ok {
		return c
	}
	return "gray"
}

// Events lazily yields one calendar event per meeting day of every eligible
// section. A section is eligible when it has days and a time, is not flagged
// conflicting, and its term is visible under the scope. The sequence is
// finite and restartable; ranging over it twice yields the same events.
func Events(sections []Selected, scope Scope) iter.Seq[Event] {
	visible := scope.terms()
	return func(yield func(Event) bool) {
		for _, s := range sections {
			if s.Days == "" || s.Time == "" || s.IsConflicting {
				continue
			}
			if _, ok := visible[s.Term]; !ok {
				continue
			}
			tr := ParseTimeRange(s.Time)
			if tr.Start == 0 && tr.End == 0 {
				continue
			}
			for _, day := range s.Days {
				ordinal, ok := weekdays[day]
				if !ok {
					continue
				}
				ev := Event{
					Title:   s.CourseCode,
					Weekday: ordinal,
					Start:   Clock24(tr.Start),
					End:     Clock24(tr.End),
					Color:   TermColor(s.Term),
				}
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// CollectEvents materializes Events into a slice, for JSON responses and
// table output.
func CollectEvents(sections []Selected, scope Scope) []Event {
	var out []Event
	for ev := range Events(sections, scope) {
		out = append(out, ev)
	}
	return out
}
