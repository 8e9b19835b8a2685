// Package rowsource turns flat tabular data files (CSV, JSON arrays, HTML
// tables) into arrays of key-value records with canonical field names. It
// performs no semantic validation; downstream consumers decide what to do
// with missing or malformed fields.
package rowsource

import (
	"fmt"
	"strings"

	"github.com/coursedeck/coursedeck/internal/utils"
)

// Record is a single flat row. Keys are canonical field names (see the Field*
// constants); unknown source columns are kept under their cleaned header name.
type Record map[string]string

// Canonical field names shared by all decoders.
const (
	FieldCode             = "code"
	FieldTitle            = "title"
	FieldSection          = "section"
	FieldDays             = "days"
	FieldTime             = "time"
	FieldTerm             = "term"
	FieldCredits          = "credits"
	FieldInstructor       = "instructor"
	FieldLastName         = "last_name"
	FieldCourseRating     = "course_rating"
	FieldInstructorRating = "instructor_rating"
	FieldDifficultyRating = "difficulty_rating"
	FieldWorkRating       = "work_rating"
	FieldAveragePrice     = "average_price"
)

// headerAliases maps cleaned source column names to canonical field names.
// Cleaning lowercases and strips everything that isn't a letter or digit, so
// "Course Quality", "course_quality" and "CourseQuality" all resolve the same.
var headerAliases = map[string]string{
	"code":              FieldCode,
	"course":            FieldCode,
	"coursecode":        FieldCode,
	"courseid":          FieldCode,
	"title":             FieldTitle,
	"coursetitle":       FieldTitle,
	"name":              FieldTitle,
	"section":           FieldSection,
	"sectionid":         FieldSection,
	"session":           FieldSection,
	"sessionid":         FieldSection,
	"days":              FieldDays,
	"meetingdays":       FieldDays,
	"time":              FieldTime,
	"meetingtime":       FieldTime,
	"times":             FieldTime,
	"term":              FieldTerm,
	"semester":          FieldTerm,
	"credits":           FieldCredits,
	"credit":            FieldCredits,
	"cu":                FieldCredits,
	"instructor":        FieldInstructor,
	"instructorname":    FieldInstructor,
	"professor":         FieldInstructor,
	"lastname":          FieldLastName,
	"instructorlast":    FieldLastName,
	"coursequality":     FieldCourseRating,
	"courserating":      FieldCourseRating,
	"instructorquality": FieldInstructorRating,
	"instructorrating":  FieldInstructorRating,
	"difficulty":        FieldDifficultyRating,
	"difficultyrating":  FieldDifficultyRating,
	"workrequired":      FieldWorkRating,
	"workrating":        FieldWorkRating,
	"averageprice":      FieldAveragePrice,
	"avgprice":          FieldAveragePrice,
	"price":             FieldAveragePrice,
}

// CanonicalKey resolves a raw source column name to its canonical field name,
// falling back to the cleaned header when no alias is known.
func CanonicalKey(header string) string {
	cleaned := cleanHeader(header)
	if canonical, ok := headerAliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

func cleanHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Get returns the trimmed value for a canonical field, or "" when absent.
func (r Record) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// Source decodes one raw data stream into records.
type Source interface {
	Name() string
	Load() ([]Record, error)
}

// Pair holds the two decoded streams the catalog needs. Both must decode for
// a Pair to exist at all: a failed or empty source fails the whole load, so a
// partially populated catalog is never observable.
type Pair struct {
	Listing []Record
	Prices  []Record
}

// LoadPair loads both sources with join semantics. Either source failing, or
// yielding zero rows, fails the pair.
func LoadPair(listing, prices Source) (*Pair, error) {
	listingRows, err := listing.Load()
	if err != nil {
		return nil, fmt.Errorf("loading listing from %s: %w", listing.Name(), err)
	}
	priceRows, err := prices.Load()
	if err != nil {
		return nil, fmt.Errorf("loading prices from %s: %w", prices.Name(), err)
	}
	if len(listingRows) == 0 {
		return nil, fmt.Errorf("listing source %s produced no rows", listing.Name())
	}
	if len(priceRows) == 0 {
		return nil, fmt.Errorf("price source %s produced no rows", prices.Name())
	}
	utils.Log.Debugf("loaded %d listing rows and %d price rows", len(listingRows), len(priceRows))
	return &Pair{Listing: listingRows, Prices: priceRows}, nil
}
