package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"soil", "soil", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"soil", "soli", 2},
		{"soil", "soils", 1},
		{"water", "wather", 1},
		{"light", "night", 1},
		{"kitten", "sitting", 3},
		{"temperature", "temprature", 1},
		{"Seed", "seed", 1},
		{"héat", "heat", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			if rev := Levenshtein(tt.b, tt.a); rev != result {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, reversed = %d", tt.a, tt.b, result, rev)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	domains := []string{"seed", "soil", "fertilizer", "water", "light"}

	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"soli", "soil", true},
		{"fertiliser", "fertilizer", true},
		{"Water", "water", true},
		{"seed", "", false},
		{"humidity", "", false},
		{"rock", "", false},
	}

	for _, tt := range tests {
		got, ok := Closest(tt.name, domains, 2)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.expected, tt.ok)
		}
	}
}
