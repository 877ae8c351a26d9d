package match

import (
	"math"
	"reflect"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"prefix", "prefix", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"sufix", "suffix", 1},
		{"circumflex", "circumfix", 2},

		// Runes, not bytes
		{"é", "e", 1},
		{"🐑", "🐄", 1},
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			reverse := Levenshtein(tt.b, tt.a)
			if reverse != result {
				t.Errorf("Levenshtein is not symmetric: %d vs %d", result, reverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"sufix", "suffix", 1 - 1.0/6},
		{"ab", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	flavors := []string{"Prefix", "Suffix", "Infix", "Circumfix", "Ambifix", "Duplifix", "Transfix", "Disfix"}

	tests := []struct {
		name     string
		word     string
		limit    int
		expected []string
	}{
		{"typo", "sufix", 1, []string{"Suffix"}},
		{"case and separators", "CIRCUM_FIX", 1, []string{"Circumfix"}},
		{"nothing close", "xylophone", 3, nil},
		{"no limit", "fix", 0, []string{"Infix", "Prefix", "Suffix", "Disfix"}},
		{"several", "infx", 2, []string{"Infix", "Disfix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Suggest(tt.word, flavors, tt.limit)
			if len(result) == 0 && len(tt.expected) == 0 {
				return
			}

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.word, result, tt.expected)
			}
		})
	}
}

func TestSuggestSkipsDuplicatesAndBlanks(t *testing.T) {
	result := Suggest("hyphen", []string{"hyphen", "", "hyphen", "hyphens"}, 0)
	expected := []string{"hyphen", "hyphens"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Suggest = %v, want %v", result, expected)
	}
}
