package schedule

import "testing"

func sel(code, session, days, time string) Selected {
	return Selected{CourseCode: code, SessionID: session, Days: days, Time: time, Term: "Full"}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name     string
		a        Selected
		b        Selected
		conflict bool
	}{
		{
			"overlapping same day",
			sel("CIS-1200", "001", "MWF", "9:00am-10:30am"),
			sel("MATH-1400", "101", "MW", "10:00am-11:00am"),
			true,
		},
		{
			"touching endpoints do not conflict",
			sel("CIS-1200", "001", "MWF", "9:00am-10:00am"),
			sel("MATH-1400", "101", "MWF", "10:00am-11:00am"),
			false,
		},
		{
			"no shared day",
			sel("CIS-1200", "001", "MWF", "9:00am-10:00am"),
			sel("MATH-1400", "101", "TR", "9:00am-10:00am"),
			false,
		},
		{
			"missing time on one side",
			sel("CIS-1200", "001", "MWF", ""),
			sel("MATH-1400", "101", "MWF", "9:00am-10:00am"),
			false,
		},
		{
			"missing days on one side",
			sel("CIS-1200", "001", "", "9:00am-10:00am"),
			sel("MATH-1400", "101", "MWF", "9:00am-10:00am"),
			false,
		},
		{
			"unparsable time treated as non-blocking",
			sel("CIS-1200", "001", "MWF", "TBA"),
			sel("MATH-1400", "101", "MWF", "9:00am-10:00am"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.a, tt.b); got != tt.conflict {
				t.Errorf("HasConflict = %v, want %v", got, tt.conflict)
			}
			// Conflicts are symmetric.
			if got := HasConflict(tt.b, tt.a); got != tt.conflict {
				t.Errorf("HasConflict reversed = %v, want %v", got, tt.conflict)
			}
		})
	}
}

func TestMarkConflicts(t *testing.T) {
	sections := []Selected{
		sel("CIS-1200", "001", "MWF", "9:00am-10:30am"),
		sel("MATH-1400", "101", "MW", "10:00am-11:00am"),
		sel("ARTH-1010", "001", "TR", "1:00pm-2:00pm"),
	}

	marked := MarkConflicts(sections)

	if !marked[0].IsConflicting || !marked[1].IsConflicting {
		t.Error("both members of the conflicting pair should be flagged")
	}
	if marked[2].IsConflicting {
		t.Error("non-overlapping section should not be flagged")
	}

	// The input slice stays untouched; callers get a fresh copy.
	if sections[0].IsConflicting {
		t.Error("MarkConflicts mutated its input")
	}
}
