package almanac

import (
	"fmt"

	"github.com/BlackVoid/aoc2023/internal/diagnostic"
	"github.com/BlackVoid/aoc2023/internal/match"
)

// maxSuggestDistance bounds the edit distance of a suggested domain name.
const maxSuggestDistance = 2

// Check reports suspicious but legal almanac content. Resolution is not
// affected by any of these: overlapping intervals keep whichever match the
// binary search finds, unreachable stages are never applied.
func Check(a *Almanac) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if a == nil {
		res.AddError("almanac_is_nil", "almanac is nil", "", 0)
		return res
	}

	if len(a.Seeds) == 0 {
		res.AddWarning("no_seeds", "seed list is empty, nothing will be resolved", seedsPrefix, 0)
	}

	if len(a.Seeds)%2 != 0 {
		res.AddWarning("odd_seeds", "seed list cannot be read as (start, length) pairs", seedsPrefix, 0)
	}

	reachable := make(map[*Stage]bool, len(a.chain))
	domains := []string{SeedDomain}

	for _, st := range a.chain {
		reachable[st] = true
		domains = append(domains, st.To)
	}

	for _, st := range a.Ordered() {
		block := st.Name() + " " + mapSuffix

		if !reachable[st] {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     "unreachable_stage",
				Message:  fmt.Sprintf("stage %q is not reachable from domain %q", st.Name(), SeedDomain),
				Block:    block,
				Line:     st.Line,
			}

			if near, ok := match.Closest(st.From, domains, maxSuggestDistance); ok {
				d.Suggestions = []string{fmt.Sprintf("%q", near)}
			}

			res.Add(d)
		}

		if len(st.Intervals) == 0 {
			res.AddWarning("empty_stage", "stage has no intervals and maps every value to itself", block, st.Line)
		}

		// widest is the interval reaching furthest right so far.
		var (
			widest Interval
			seen   bool
		)

		for _, iv := range st.Intervals {
			if iv.Len() == 0 {
				res.AddWarning("empty_interval", fmt.Sprintf("interval %s covers no values", iv), block, st.Line)
				continue
			}

			if seen && widest.Overlaps(iv) {
				res.AddWarning("overlapping_intervals",
					fmt.Sprintf("intervals %s and %s overlap", widest, iv),
					block, st.Line)
			}

			if !seen || iv.End > widest.End {
				widest = iv
				seen = true
			}
		}
	}

	return res
}
