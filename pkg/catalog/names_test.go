package catalog

import "testing"

func TestLastName(t *testing.T) {
	tests := []struct {
		name     string
		full     string
		override string
		expected string
	}{
		{"comma form", "Smith, John", "", "Smith"},
		{"plain form", "John Smith", "", "Smith"},
		{"override wins", "John Smith", "Jones", "Jones"},
		{"middle names", "Anna Maria Lopez", "", "Lopez"},
		{"comma with spaces", " Van Pelt , Lucy", "", "Van Pelt"},
		{"single token", "Cher", "", "Cher"},
		{"blank no override", "   ", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastName(tt.full, tt.override); got != tt.expected {
				t.Errorf("LastName(%q, %q) = %q, want %q", tt.full, tt.override, got, tt.expected)
			}
		})
	}
}
