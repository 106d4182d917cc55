package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackVoid/aoc2023/internal/almanac/almanactest"
)

func codes(t *testing.T, input string) []string {
	t.Helper()

	a, err := Parse(input)
	require.NoError(t, err)

	diags := Check(a)
	require.False(t, diags.HasErrors())

	var out []string
	for _, d := range diags.Warnings {
		out = append(out, d.Code)
	}

	return out
}

func TestCheckExampleIsClean(t *testing.T) {
	assert.Empty(t, codes(t, almanactest.Example))
}

func TestCheckWarnings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "overlap with widest interval",
			input:    "seeds: 1 1\n\nseed-to-soil map:\n0 0 100\n5 10 5\n9 30 5\n",
			expected: []string{"overlapping_intervals", "overlapping_intervals"},
		},
		{
			name:     "adjacent intervals do not overlap",
			input:    "seeds: 1 1\n\nseed-to-soil map:\n0 0 10\n5 10 5\n",
			expected: nil,
		},
		{
			name:     "empty interval",
			input:    "seeds: 1 1\n\nseed-to-soil map:\n0 3 0\n",
			expected: []string{"empty_interval"},
		},
		{
			name:     "empty stage",
			input:    "seeds: 1 1\n\nseed-to-soil map:\n",
			expected: []string{"empty_stage"},
		},
		{
			name:     "unreachable",
			input:    "seeds: 1 1\n\nrock-to-sand map:\n1 2 3\n",
			expected: []string{"unreachable_stage"},
		},
		{
			name:     "no seeds",
			input:    "seeds:\n",
			expected: []string{"no_seeds"},
		},
		{
			name:     "odd seeds",
			input:    "seeds: 1 2 3\n",
			expected: []string{"odd_seeds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codes(t, tt.input))
		})
	}
}

func TestCheckNil(t *testing.T) {
	diags := Check(nil)
	assert.True(t, diags.HasErrors())
}

func TestOverlappingIntervalsKeepSearchResult(t *testing.T) {
	// Overlaps are not rejected. A value may fall through to identity, but
	// it never maps through an interval that does not contain it.
	st, err := ParseStage("a-to-b map:\n1000 0 100\n2000 10 5\n")
	require.NoError(t, err)

	for x := uint64(0); x < 120; x++ {
		iv, ok := st.Lookup(x)
		if !ok {
			assert.Equal(t, x, st.Map(x))
			continue
		}

		assert.True(t, iv.Contains(x), "value %d matched %s", x, iv)
		assert.Equal(t, iv.Map(x), st.Map(x))
	}
}

func TestCheckSuggestsDomain(t *testing.T) {
	a, err := Parse("seeds: 1 1\n\nseed-to-soil map:\n1 2 3\n\nsoli-to-water map:\n1 2 3\n")
	require.NoError(t, err)

	diags := Check(a)
	require.Len(t, diags.Warnings, 1)

	w := diags.Warnings[0]
	assert.Equal(t, "unreachable_stage", w.Code)
	assert.Equal(t, []string{`"soil"`}, w.Suggestions)
	assert.Equal(t, 6, w.Line)
}
