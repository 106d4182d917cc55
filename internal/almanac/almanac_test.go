package almanac

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackVoid/aoc2023/internal/almanac/almanactest"
)

func TestParseExample(t *testing.T) {
	a, err := Parse(almanactest.Example)
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)
	require.Len(t, a.Chain(), 7)
	assert.Equal(t, "location", a.FinalDomain())

	for i, st := range a.Chain() {
		assert.Equal(t, almanactest.Domains[i], st.From, spew.Sdump(st))
		assert.Equal(t, almanactest.Domains[i+1], st.To)
	}

	st, ok := a.Stage("water")
	require.True(t, ok)
	assert.Equal(t, "light", st.To)
	assert.Equal(t, 18, st.Line)

	_, ok = a.Stage("location")
	assert.False(t, ok)
}

func TestResolveExample(t *testing.T) {
	a, err := Parse(almanactest.Example)
	require.NoError(t, err)

	tests := []struct {
		seed     uint64
		expected uint64
	}{
		{79, 82},
		{14, 43},
		{55, 86},
		{13, 35},
		{82, 46},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, a.Resolve(tt.seed), "Resolve(%d)", tt.seed)
		// Deterministic on repeated calls.
		assert.Equal(t, tt.expected, a.Resolve(tt.seed), "Resolve(%d) again", tt.seed)
	}
}

func TestTrace(t *testing.T) {
	a, err := Parse(almanactest.Example)
	require.NoError(t, err)

	steps := a.Trace(79)
	expected := []Step{
		{"seed", 79},
		{"soil", 81},
		{"fertilizer", 81},
		{"water", 81},
		{"light", 74},
		{"temperature", 78},
		{"humidity", 78},
		{"location", 82},
	}
	assert.Equal(t, expected, steps)
	assert.Equal(t, a.Resolve(79), steps[len(steps)-1].Value)
}

func TestResolveMatchesStepwiseLookup(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 2023))
	input := almanactest.Generate(r, almanactest.Config{Seeds: 6, Intervals: 8, Span: 10_000, MaxRange: 100})

	a, err := Parse(input)
	require.NoError(t, err, input)

	// Follow stages by domain lookup one hop at a time.
	stepwise := func(seed uint64) uint64 {
		domain, v := SeedDomain, seed
		for {
			st, ok := a.Stage(domain)
			if !ok {
				return v
			}

			v = st.Map(v)
			domain = st.To
		}
	}

	for range 2000 {
		seed := r.Uint64N(12_000)
		require.Equal(t, stepwise(seed), a.Resolve(seed), "seed %d", seed)
	}
}

func TestParseStagesOutOfOrder(t *testing.T) {
	input := `seeds: 1 2 3

soil-to-water map:
10 0 5

seed-to-soil map:
0 1 1
`

	a, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, a.Chain(), 2)
	assert.Equal(t, "seed-to-soil", a.Chain()[0].Name())
	assert.Equal(t, "soil-to-water", a.Chain()[1].Name())

	ordered := a.Ordered()
	require.Len(t, ordered, 2)
	assert.Equal(t, "seed-to-soil", ordered[0].Name())

	assert.Equal(t, uint64(10), a.Resolve(1))
	assert.Equal(t, uint64(12), a.Resolve(2))
	assert.Equal(t, uint64(5), a.Resolve(5))
}

func TestParseNoStages(t *testing.T) {
	a, err := Parse("seeds: 4 8\n")
	require.NoError(t, err)

	assert.Empty(t, a.Chain())
	assert.Equal(t, SeedDomain, a.FinalDomain())
	assert.Equal(t, uint64(4), a.Resolve(4))
	assert.Equal(t, []Step{{"seed", 4}}, a.Trace(4))
}

func TestParseEmptySeeds(t *testing.T) {
	a, err := Parse("seeds:\n\nseed-to-soil map:\n1 2 3\n")
	require.NoError(t, err)
	assert.Empty(t, a.Seeds)
}

func TestParseUnreachableStage(t *testing.T) {
	a, err := Parse("seeds: 1\n\nseed-to-soil map:\n5 1 1\n\nrock-to-sand map:\n0 0 100\n")
	require.NoError(t, err)

	require.Len(t, a.Chain(), 1)
	assert.Len(t, a.Ordered(), 2)
	assert.Equal(t, uint64(5), a.Resolve(1))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"empty", "\n\n", "empty_input"},
		{"missing seeds", "seed-to-soil map:\n1 2 3\n", "missing_seeds"},
		{"bad seed", "seeds: 1 two 3\n", "invalid_number"},
		{"extra seed line", "seeds: 1 2\n3 4\n", "unexpected_line"},
		{"bad stage line", "seeds: 1\n\nseed-to-soil map:\n1 2\n", "wrong_token_count"},
		{"bad stage header", "seeds: 1\n\nseed to soil map:\n1 2 3\n", "invalid_header"},
		{"duplicate stage", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nseed-to-water map:\n1 2 3\n", "duplicate_stage"},
		{"cycle", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nsoil-to-seed map:\n1 2 3\n", "stage_cycle"},
		{"self loop", "seeds: 1\n\nseed-to-seed map:\n1 2 3\n", "stage_cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.Contains(t, err.Error(), "["+tt.code+"]")
		})
	}
}

func TestParseWithDiagnosticsCollectsAllErrors(t *testing.T) {
	input := strings.Join([]string{
		"seeds: 1 x",
		"",
		"seed-to-soil map:",
		"1 2",
		"3 4 5 6",
	}, "\n")

	a, diags := ParseWithDiagnostics(input)
	assert.Nil(t, a)
	require.Len(t, diags.Errors, 3)
	assert.Equal(t, 1, diags.Errors[0].Line)
	assert.Equal(t, 4, diags.Errors[1].Line)
	assert.Equal(t, 5, diags.Errors[2].Line)
}

func TestSeedRanges(t *testing.T) {
	ranges, err := SeedRanges([]uint64{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, []SeedRange{{79, 14}, {55, 13}}, ranges)
	assert.Equal(t, uint64(93), ranges[0].End())
	assert.Equal(t, "[79,93)", ranges[0].String())

	total, ok := TotalSeeds(ranges)
	assert.True(t, ok)
	assert.Equal(t, uint64(27), total)

	_, err = SeedRanges([]uint64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOddSeeds))

	_, err = SeedRanges([]uint64{18446744073709551615, 2})
	require.Error(t, err)

	ranges, err = SeedRanges(nil)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestTotalSeedsOverflow(t *testing.T) {
	_, ok := TotalSeeds([]SeedRange{{0, 1 << 63}, {0, 1 << 63}})
	assert.False(t, ok)
}
