// Package almanactest provides almanac inputs for tests.
package almanactest

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Example is the published sample almanac.
// Part one resolves to 35, part two to 46.
const Example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// Domains is the chain of domains used by the puzzle.
var Domains = []string{
	"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
}

// Config controls Generate.
type Config struct {
	// Seeds is the number of seed values; pairs of them form ranges.
	Seeds int
	// Intervals is the maximum number of intervals per stage.
	Intervals int
	// Span bounds every generated value.
	Span uint64
	// MaxRange bounds the length of each seed range.
	MaxRange uint64
}

// Generate builds a random, well-formed almanac over Domains.
// Intervals within a stage are disjoint and listed in shuffled order.
func Generate(r *rand.Rand, cfg Config) string {
	var b strings.Builder

	b.WriteString("seeds:")

	for i := range cfg.Seeds {
		if i%2 == 0 {
			fmt.Fprintf(&b, " %d", r.Uint64N(cfg.Span))
		} else {
			fmt.Fprintf(&b, " %d", r.Uint64N(cfg.MaxRange+1))
		}
	}

	b.WriteString("\n")

	for i := 1; i < len(Domains); i++ {
		fmt.Fprintf(&b, "\n%s-to-%s map:\n", Domains[i-1], Domains[i])

		for _, l := range intervalLines(r, cfg) {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func intervalLines(r *rand.Rand, cfg Config) []string {
	n := 1 + r.IntN(cfg.Intervals)

	// Sorted distinct cut points give disjoint source intervals.
	cuts := make([]uint64, 0, 2*n)
	for range 2 * n {
		cuts = append(cuts, r.Uint64N(cfg.Span))
	}

	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var lines []string

	for i := 0; i+1 < len(cuts); i += 2 {
		src, length := cuts[i], cuts[i+1]-cuts[i]
		dst := r.Uint64N(cfg.Span)
		lines = append(lines, fmt.Sprintf("%d %d %d", dst, src, length))
	}

	r.Shuffle(len(lines), func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})

	return lines
}
