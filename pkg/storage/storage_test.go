package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/coursedeck/coursedeck/pkg/catalog"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleCatalog() []catalog.Course {
	rating := 3.5
	return []catalog.Course{
		{
			Code:         "CIS-1200",
			Title:        "Programming Languages",
			CourseRating: &rating,
			AveragePrice: 1500,
			Terms:        "Full, Q1",
			Credits:      "1",
			Sections: []catalog.Section{
				{
					SessionID: "001", Days: "MWF", Time: "9:00am-10:00am", Term: "Full",
					Credits: "1", Meetings: "MWF 9:00am-10:00am",
					Instructors: []catalog.Instructor{{Name: "Smith", CourseRating: &rating}},
				},
				{
					SessionID: "002", Days: "TR", Time: "1:30pm-3:00pm", Term: "Q1",
					Credits: "1", Meetings: "TR 1:30pm-3:00pm",
					Instructors: []catalog.Instructor{{Name: "Jones"}, {Name: "Brown"}},
				},
			},
		},
		{
			Code: "MATH-1400", Title: "Calculus", AveragePrice: 900, Terms: "Q2", Credits: "0.5",
			Sections: []catalog.Section{
				{SessionID: "101", Days: "MW", Time: "11:00am-12:00pm", Term: "Q2", Credits: "0.5", Meetings: "MW 11:00am-12:00pm"},
			},
		},
	}
}

func TestReplaceAndLoadCatalogRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	changes, err := db.ReplaceCatalog(ctx, sampleCatalog())
	if err != nil {
		t.Fatalf("replacing catalog: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 'added' changes, got %d", len(changes))
	}
	for _, c := range changes {
		if c.ChangeType != "added" {
			t.Errorf("expected added, got %s for %s", c.ChangeType, c.Code)
		}
	}

	loaded, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(loaded))
	}

	cis := loaded[0]
	if cis.Code != "CIS-1200" || cis.Terms != "Full, Q1" || cis.AveragePrice != 1500 {
		t.Errorf("course fields lost in round trip: %+v", cis)
	}
	if cis.CourseRating == nil || *cis.CourseRating != 3.5 {
		t.Error("course rating lost in round trip")
	}
	if loaded[1].CourseRating != nil {
		t.Error("absent rating became present in round trip")
	}
	if len(cis.Sections) != 2 || cis.Sections[0].SessionID != "001" {
		t.Errorf("section order lost: %+v", cis.Sections)
	}
	if len(cis.Sections[1].Instructors) != 2 || cis.Sections[1].Instructors[0].Name != "Jones" {
		t.Errorf("instructor order lost: %+v", cis.Sections[1].Instructors)
	}
}

func TestReplaceCatalogTracksChanges(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	courses := sampleCatalog()
	if _, err := db.ReplaceCatalog(ctx, courses); err != nil {
		t.Fatal(err)
	}

	// Second load: one course retitled, one dropped.
	courses[0].Title = "Programming Languages and Techniques"
	reduced := courses[:1]
	changes, err := db.ReplaceCatalog(ctx, reduced)
	if err != nil {
		t.Fatal(err)
	}

	byType := map[string]string{}
	for _, c := range changes {
		byType[c.ChangeType] = c.Code
	}
	if byType["updated"] != "CIS-1200" {
		t.Errorf("expected CIS-1200 updated, got %v", changes)
	}
	if byType["removed"] != "MATH-1400" {
		t.Errorf("expected MATH-1400 removed, got %v", changes)
	}

	recent, err := db.ListRecentChanges(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 4 {
		t.Errorf("expected 4 change records total, got %d", len(recent))
	}
}

func TestSelectionToggleAndPrune(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	courses := sampleCatalog()
	if _, err := db.ReplaceCatalog(ctx, courses); err != nil {
		t.Fatal(err)
	}

	if _, err := db.ToggleSelection(ctx, "CIS-1200", "999"); err == nil {
		t.Error("expected error toggling an unknown section")
	}

	selected, err := db.ToggleSelection(ctx, "CIS-1200", "001")
	if err != nil {
		t.Fatal(err)
	}
	if !selected {
		t.Error("first toggle should select")
	}
	if _, err := db.ToggleSelection(ctx, "MATH-1400", "101"); err != nil {
		t.Fatal(err)
	}

	sections, err := db.SelectedSections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 selected sections, got %d", len(sections))
	}
	if sections[0].CourseCode != "CIS-1200" || sections[0].Price != 1500 {
		t.Errorf("unexpected first selection: %+v", sections[0])
	}

	// Toggling again deselects.
	selected, err = db.ToggleSelection(ctx, "CIS-1200", "001")
	if err != nil {
		t.Fatal(err)
	}
	if selected {
		t.Error("second toggle should deselect")
	}

	// Reload without MATH-1400; its selection must be swept.
	if _, err := db.ReplaceCatalog(ctx, courses[:1]); err != nil {
		t.Fatal(err)
	}
	sections, err = db.SelectedSections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 0 {
		t.Errorf("stale selections survived the reload: %+v", sections)
	}
}
