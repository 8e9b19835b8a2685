// Package catalog builds an immutable Course/Section/Instructor hierarchy from
// flat listing rows plus a per-course price lookup.
package catalog

// Course is one catalog entry, keyed by its canonical DEPT-NNNN code.
// Rating fields are nil when the source never carried a usable value; a zero
// rating is only ever a parsed, explicitly present zero.
type Course struct {
	Code             string    `json:"code"`
	Title            string    `json:"title"`
	CourseRating     *float64  `json:"course_rating,omitempty"`
	InstructorRating *float64  `json:"instructor_rating,omitempty"`
	DifficultyRating *float64  `json:"difficulty_rating,omitempty"`
	WorkRating       *float64  `json:"work_rating,omitempty"`
	AveragePrice     float64   `json:"average_price"`
	Terms            string    `json:"terms"`
	Credits          string    `json:"credits"`
	Sections         []Section `json:"sections"`
}

// Section is one meeting pattern of a course. SessionID is only unique within
// its owning course.
type Section struct {
	SessionID   string       `json:"session_id"`
	Days        string       `json:"days"`
	Time        string       `json:"time"`
	Term        string       `json:"term"`
	Credits     string       `json:"credits"`
	Meetings    string       `json:"meetings"`
	Instructors []Instructor `json:"instructors"`
}

// Instructor is embedded in a Section, one entry per contributing listing row.
// Co-taught sections carry one entry per row, without dedup by name.
type Instructor struct {
	Name             string   `json:"name"`
	CourseRating     *float64 `json:"course_rating,omitempty"`
	InstructorRating *float64 `json:"instructor_rating,omitempty"`
	DifficultyRating *float64 `json:"difficulty_rating,omitempty"`
	WorkRating       *float64 `json:"work_rating,omitempty"`
}

// Department returns the DEPT part of the course code.
func (c Course) Department() string {
	if len(c.Code) < 4 {
		return c.Code
	}
	return c.Code[:4]
}
