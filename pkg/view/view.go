// Package view derives filterable, sortable projections of the catalog. All
// functions are pure: they never mutate their inputs and recompute fresh
// results from whatever they are handed.
package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coursedeck/coursedeck/pkg/catalog"
)

// Filters is the user-driven filter state. Empty string means wildcard.
type Filters struct {
	Department string `json:"department"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	Term       string `json:"term"`
	Credits    string `json:"credits"`
	Search     string `json:"search"`
}

// Options are the filter vocabularies derived from the current catalog.
type Options struct {
	Departments []string `json:"departments"`
	Days        []string `json:"days"`
	Times       []string `json:"times"`
	Terms       []string `json:"terms"`
	Credits     []string `json:"credits"`
}

// Sort field keys accepted by Sort and the CLI/API surfaces.
const (
	SortByCode             = "code"
	SortByTitle            = "title"
	SortByCourseRating     = "course_rating"
	SortByInstructorRating = "instructor_rating"
	SortByDifficultyRating = "difficulty_rating"
	SortByWorkRating       = "work_rating"
	SortByPrice            = "average_price"
)

// CollectOptions scans the catalog for the distinct non-empty values of each
// filterable field. Departments come from the first 4 characters of course
// codes; credits sort numerically when every observed value parses as a
// number, lexically otherwise.
func CollectOptions(courses []catalog.Course) Options {
	depts := make(map[string]struct{})
	days := make(map[string]struct{})
	times := make(map[string]struct{})
	terms := make(map[string]struct{})
	credits := make(map[string]struct{})

	for _, c := range courses {
		if d := c.Department(); d != "" {
			depts[d] = struct{}{}
		}
		for _, s := range c.Sections {
			if s.Days != "" {
				days[s.Days] = struct{}{}
			}
			if s.Time != "" {
				times[s.Time] = struct{}{}
			}
			if s.Term != "" {
				terms[s.Term] = struct{}{}
			}
			if s.Credits != "" {
				credits[s.Credits] = struct{}{}
			}
		}
	}

	return Options{
		Departments: sortedKeys(depts),
		Days:        sortedKeys(days),
		Times:       sortedKeys(times),
		Terms:       sortedKeys(terms),
		Credits:     sortedCredits(credits),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedCredits(set map[string]struct{}) []string {
	out := sortedKeys(set)

	values := make([]float64, len(out))
	for i, s := range out {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out
		}
		values[i] = v
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, _ := strconv.ParseFloat(out[i], 64)
		vj, _ := strconv.ParseFloat(out[j], 64)
		return vi < vj
	})
	return out
}

// Apply returns the courses passing the current filter state. A course passes
// when the search query is empty or matches code/title case-insensitively,
// the department filter is empty or prefixes the code, and for each section
// field filter at least one section carries that exact value.
func Apply(courses []catalog.Course, f Filters) []catalog.Course {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	var out []catalog.Course
	for _, c := range courses {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Code), query) &&
			!strings.Contains(strings.ToLower(c.Title), query) {
			continue
		}
		if f.Department != "" && !strings.HasPrefix(c.Code, f.Department) {
			continue
		}
		if !sectionMatch(c, f.Day, func(s catalog.Section) string { return s.Days }) {
			continue
		}
		if !sectionMatch(c, f.Time, func(s catalog.Section) string { return s.Time }) {
			continue
		}
		if !sectionMatch(c, f.Term, func(s catalog.Section) string { return s.Term }) {
			continue
		}
		if !sectionMatch(c, f.Credits, func(s catalog.Section) string { return s.Credits }) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sectionMatch(c catalog.Course, want string, field func(catalog.Section) string) bool {
	if want == "" {
		return true
	}
	for _, s := range c.Sections {
		if field(s) == want {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of courses. The sort is stable: equal keys keep
// their relative input order. Rating and price keys compare numerically, with
// absent ratings ordering below every present value; everything else compares
// lexically.
func Sort(courses []catalog.Course, key string, descending bool) []catalog.Course {
	out := make([]catalog.Course, len(courses))
	copy(out, courses)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key string) func(a, b catalog.Course) bool {
	switch key {
	case SortByTitle:
		return func(a, b catalog.Course) bool { return a.Title < b.Title }
	case SortByCourseRating:
		return ratingLess(func(c catalog.Course) *float64 { return c.CourseRating })
	case SortByInstructorRating:
		return ratingLess(func(c catalog.Course) *float64 { return c.InstructorRating })
	case SortByDifficultyRating:
		return ratingLess(func(c catalog.Course) *float64 { return c.DifficultyRating })
	case SortByWorkRating:
		return ratingLess(func(c catalog.Course) *float64 { return c.WorkRating })
	case SortByPrice:
		return func(a, b catalog.Course) bool { return a.AveragePrice < b.AveragePrice }
	default:
		return func(a, b catalog.Course) bool { return a.Code < b.Code }
	}
}

func ratingLess(field func(catalog.Course) *float64) func(a, b catalog.Course) bool {
	return func(a, b catalog.Course) bool {
		ra, rb := field(a), field(b)
		switch {
		case ra == nil && rb == nil:
			return false
		case ra == nil:
			return true
		case rb == nil:
			return false
		default:
			return *ra < *rb
		}
	}
}

// IsCodeVisible reports whether a course code still appears in a filtered
// view. Callers use it to clear a stale detail selection after a filter
// change.
func IsCodeVisible(code string, courses []catalog.Course) bool {
	for _, c := range courses {
		if c.Code == code {
			return true
		}
	}
	return false
}
