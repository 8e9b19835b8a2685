package catalog

import (
	"strconv"
	"strings"

	"github.com/coursedeck/coursedeck/internal/utils"
	"github.com/coursedeck/coursedeck/pkg/rowsource"
)

// courseBuilder accumulates one course's rows before the freeze into an
// immutable Course. Section order is first-seen row order.
type courseBuilder struct {
	course       Course
	sectionOrder []string
	sections     map[string]*Section
}

// Build merges listing rows (one row per section x instructor) and a price
// lookup into the Course hierarchy. Rows whose identifier normalizes to ""
// are dropped silently; missing optional fields are treated as absent. Two
// runs over the same row sequence produce identical output.
func Build(rows []rowsource.Record, priceByCode map[string]float64) []Course {
	var order []string
	builders := make(map[string]*courseBuilder)
	dropped := 0

	for _, row := range rows {
		code := NormalizeCode(row.Get(rowsource.FieldCode))
		if code == "" {
			dropped++
			continue
		}

		cb, ok := builders[code]
		if !ok {
			cb = &courseBuilder{
				course: Course{
					Code:             code,
					Title:            row.Get(rowsource.FieldTitle),
					CourseRating:     parseRating(row.Get(rowsource.FieldCourseRating)),
					InstructorRating: parseRating(row.Get(rowsource.FieldInstructorRating)),
					DifficultyRating: parseRating(row.Get(rowsource.FieldDifficultyRating)),
					WorkRating:       parseRating(row.Get(rowsource.FieldWorkRating)),
					AveragePrice:     priceByCode[code],
				},
				sections: make(map[string]*Section),
			}
			builders[code] = cb
			order = append(order, code)
		}

		sessionID := row.Get(rowsource.FieldSection)
		if sessionID == "" {
			continue
		}

		sec, ok := cb.sections[sessionID]
		if !ok {
			days := row.Get(rowsource.FieldDays)
			time := row.Get(rowsource.FieldTime)
			sec = &Section{
				SessionID: sessionID,
				Days:      days,
				Time:      time,
				Term:      row.Get(rowsource.FieldTerm),
				Credits:   row.Get(rowsource.FieldCredits),
				Meetings:  strings.TrimSpace(days + " " + time),
			}
			cb.sections[sessionID] = sec
			cb.sectionOrder = append(cb.sectionOrder, sessionID)
		}

		sec.Instructors = append(sec.Instructors, Instructor{
			Name:             LastName(row.Get(rowsource.FieldInstructor), row.Get(rowsource.FieldLastName)),
			CourseRating:     parseRating(row.Get(rowsource.FieldCourseRating)),
			InstructorRating: parseRating(row.Get(rowsource.FieldInstructorRating)),
			DifficultyRating: parseRating(row.Get(rowsource.FieldDifficultyRating)),
			WorkRating:       parseRating(row.Get(rowsource.FieldWorkRating)),
		})
	}

	if dropped > 0 {
		utils.Log.Debugf("dropped %d rows with unusable course identifiers", dropped)
	}

	courses := make([]Course, 0, len(order))
	for _, code := range order {
		courses = append(courses, builders[code].freeze())
	}
	return courses
}

func (cb *courseBuilder) freeze() Course {
	c := cb.course
	c.Sections = make([]Section, 0, len(cb.sectionOrder))

	var terms, credits []string
	seenTerms := make(map[string]struct{})
	seenCredits := make(map[string]struct{})

	for _, id := range cb.sectionOrder {
		sec := cb.sections[id]
		c.Sections = append(c.Sections, *sec)

		if sec.Term != "" {
			if _, ok := seenTerms[sec.Term]; !ok {
				seenTerms[sec.Term] = struct{}{}
				terms = append(terms, sec.Term)
			}
		}
		if sec.Credits != "" {
			if _, ok := seenCredits[sec.Credits]; !ok {
				seenCredits[sec.Credits] = struct{}{}
				credits = append(credits, sec.Credits)
			}
		}
	}

	c.Terms = strings.Join(terms, ", ")
	c.Credits = strings.Join(credits, ", ")
	return c
}

// BuildPriceIndex turns price rows into a canonical-code lookup. Rows with an
// unusable identifier are dropped; malformed price values resolve to 0.
func BuildPriceIndex(rows []rowsource.Record) map[string]float64 {
	prices := make(map[string]float64, len(rows))
	for _, row := range rows {
		code := NormalizeCode(row.Get(rowsource.FieldCode))
		if code == "" {
			continue
		}
		price, err := strconv.ParseFloat(row.Get(rowsource.FieldAveragePrice), 64)
		if err != nil || price < 0 {
			price = 0
		}
		prices[code] = price
	}
	return prices
}

// parseRating implements the absent-vs-zero rule: an empty or non-numeric
// field is absent (nil), while an explicit value parses through, zero
// included.
func parseRating(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
