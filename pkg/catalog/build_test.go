package catalog

import (
	"testing"

	"github.com/coursedeck/coursedeck/pkg/rowsource"
)

func TestBuildHierarchy(t *testing.T) {
	rows := []rowsource.Record{
		row("CIS 1200", "Programming Languages", "001", "MWF", "9:00am-10:00am", "Full", "1", "Smith, John"),
		row("CIS 1200", "Programming Languages", "002", "TR", "1:30pm-3:00pm", "Q1", "1", "Jones, Mary"),
		row("cis1200", "Programming Languages", "002", "TR", "1:30pm-3:00pm", "Q1", "1", "Brown, Alex"),
		row("MATH 1400", "Calculus", "101", "MW", "11:00am-12:00pm", "Q2", "0.5", "Lee, Ann"),
	}
	prices := map[string]float64{"CIS-1200": 1500, "MATH-1400": 900}

	courses := Build(rows, prices)

	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	cis := courses[0]
	if cis.Code != "CIS-1200" {
		t.Fatalf("expected CIS-1200 first, got %s", cis.Code)
	}
	if cis.AveragePrice != 1500 {
		t.Errorf("expected price 1500, got %v", cis.AveragePrice)
	}
	if len(cis.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(cis.Sections))
	}
	if cis.Terms != "Full, Q1" {
		t.Errorf("expected terms \"Full, Q1\", got %q", cis.Terms)
	}

	// Co-taught: two rows share section 002, both instructors kept in order.
	coTaught := cis.Sections[1]
	if len(coTaught.Instructors) != 2 {
		t.Fatalf("expected 2 instructors on section 002, got %d", len(coTaught.Instructors))
	}
	if coTaught.Instructors[0].Name != "Jones" || coTaught.Instructors[1].Name != "Brown" {
		t.Errorf("unexpected instructor order: %q, %q", coTaught.Instructors[0].Name, coTaught.Instructors[1].Name)
	}

	if got := cis.Sections[0].Meetings; got != "MWF 9:00am-10:00am" {
		t.Errorf("unexpected meetings string: %q", got)
	}
}

func TestBuildDropsUnusableRows(t *testing.T) {
	rows := []rowsource.Record{
		row("", "No Code", "001", "M", "9:00am-10:00am", "Full", "1", "Nobody"),
		row("!!!", "Symbol Soup", "001", "M", "9:00am-10:00am", "Full", "1", "Nobody"),
		row("CIS 1200", "Real Course", "001", "M", "9:00am-10:00am", "Full", "1", "Smith, John"),
	}

	courses := Build(rows, nil)
	if len(courses) != 1 {
		t.Fatalf("expected only the valid course, got %d", len(courses))
	}
	if courses[0].Code != "CIS-1200" {
		t.Errorf("unexpected course: %s", courses[0].Code)
	}
}

func TestBuildRatingAbsentVsZero(t *testing.T) {
	base := row("CIS 1200", "Course", "001", "M", "9:00am-10:00am", "Full", "1", "Smith, John")

	tests := []struct {
		name   string
		value  string
		want   *float64
		absent bool
	}{
		{"missing field", "", nil, true},
		{"non-numeric", "n/a", nil, true},
		{"explicit zero", "0", ptr(0), false},
		{"ordinary value", "3.5", ptr(3.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			if tt.value != "" {
				r = withRating(base, rowsource.FieldCourseRating, tt.value)
			}
			courses := Build([]rowsource.Record{r}, nil)
			got := courses[0].CourseRating
			if tt.absent {
				if got != nil {
					t.Fatalf("expected absent rating, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a present rating, got nil")
			}
			if *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }

func TestBuildRowWithoutSectionCreatesCourseOnly(t *testing.T) {
	r := row("CIS 1200", "Course", "", "", "", "", "", "")
	courses := Build([]rowsource.Record{r}, nil)
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if len(courses[0].Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(courses[0].Sections))
	}
}

func TestBuildIdempotence(t *testing.T) {
	rows := []rowsource.Record{
		row("CIS 1200", "Course", "001", "MWF", "9:00am-10:00am", "Full", "1", "Smith, John"),
		row("CIS 1200", "Course", "002", "TR", "1:30pm-3:00pm", "Q1", "1", "Jones, Mary"),
		row("MATH 1400", "Calculus", "101", "MW", "11:00am-12:00pm", "Q2", "0.5", "Lee, Ann"),
	}
	prices := map[string]float64{"CIS-1200": 1500}

	a := Build(rows, prices)
	b := Build(rows, prices)

	if len(a) != len(b) {
		t.Fatalf("runs disagree on course count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Terms != b[i].Terms || a[i].Credits != b[i].Credits {
			t.Errorf("course %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
		if len(a[i].Sections) != len(b[i].Sections) {
			t.Errorf("course %s section counts differ", a[i].Code)
		}
	}
}

func TestBuildPriceIndex(t *testing.T) {
	rows := []rowsource.Record{
		{rowsource.FieldCode: "CIS 1200", rowsource.FieldAveragePrice: "1500.50"},
		{rowsource.FieldCode: "MATH 1400", rowsource.FieldAveragePrice: "not a number"},
		{rowsource.FieldCode: "", rowsource.FieldAveragePrice: "100"},
	}

	prices := BuildPriceIndex(rows)
	if len(prices) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prices))
	}
	if prices["CIS-1200"] != 1500.50 {
		t.Errorf("expected 1500.50, got %v", prices["CIS-1200"])
	}
	if prices["MATH-1400"] != 0 {
		t.Errorf("malformed price should resolve to 0, got %v", prices["MATH-1400"])
	}
}
