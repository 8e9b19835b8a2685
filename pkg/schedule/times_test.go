package schedule

import "testing"

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		end   int
	}{
		{"morning", "9:00am-10:00am", 540, 600},
		{"crosses noon", "11:30am-1:00pm", 690, 780},
		{"noon stays noon", "12:00pm-1:00pm", 720, 780},
		{"midnight wraps", "12:00am-1:00am", 0, 60},
		{"uppercase and spaces", "9:05 AM - 10:20 PM", 545, 1340},
		{"missing half", "9:00am", 0, 0},
		{"no meridiem", "9:00-10:00", 0, 0},
		{"garbage", "TBA", 0, 0},
		{"empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimeRange(tt.input)
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("ParseTimeRange(%q) = {%d %d}, want {%d %d}", tt.input, got.Start, got.End, tt.start, tt.end)
			}
		})
	}
}

func TestClock24(t *testing.T) {
	if got := Clock24(540); got != "09:00:00" {
		t.Errorf("Clock24(540) = %q", got)
	}
	if got := Clock24(810); got != "13:30:00" {
		t.Errorf("Clock24(810) = %q", got)
	}
}
